package main

import (
	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/replay"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/scene/playing"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/state"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

// ReplayResult captures the session outcome after a headless replay
type ReplayResult struct {
	Frames         int
	State          state.GameState
	PlayerX        float64
	PlayerY        float64
	PlayerHealth   int
	Zombies        int
	PartsCollected int
	RobotBuilt     bool
}

// runReplay plays every recorded frame through a fresh session seeded from the replay.
// Playback stops early once the session leaves the playing state.
func runReplay(cfg *config.GameConfig, mapCfg *config.MapConfig, data *replay.ReplayData, log *logrus.Entry) (ReplayResult, error) {
	session, err := playing.NewSession(cfg, mapCfg, data.Seed, log)
	if err != nil {
		return ReplayResult{}, err
	}
	defer session.Close()

	replayer := replay.NewReplayer(*data)
	for session.State() == state.StatePlaying {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		session.Tick(in)
	}

	return resultOf(session), nil
}

func resultOf(s *playing.Session) ReplayResult {
	p := s.Player()
	progress := s.Progress()
	return ReplayResult{
		Frames:         s.Frame(),
		State:          s.State(),
		PlayerX:        p.Mover.Pos.X,
		PlayerY:        p.Mover.Pos.Y,
		PlayerHealth:   p.Health,
		Zombies:        len(s.Enemies()),
		PartsCollected: progress.PartsCollected,
		RobotBuilt:     progress.RobotBuilt(),
	}
}
