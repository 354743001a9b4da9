package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/state"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/system"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

func tickN(s *Session, in system.InputState, n int) {
	for i := 0; i < n; i++ {
		s.Tick(in)
	}
}

func TestNewSession(t *testing.T) {
	s := createTestSession(t)

	player := s.Player()
	require.NotNil(t, player)
	assert.Equal(t, entity.KindPlayer, player.Kind)
	assert.Equal(t, entity.Position{X: 16, Y: 16}, player.Pos)
	assert.Equal(t, 100, player.Health)

	require.Len(t, s.Enemies(), 1)
	assert.Equal(t, 120.0, s.Enemies()[0].DetectRange)
	assert.Len(t, s.Parts(), 2)
	assert.Equal(t, 2, s.Progress().PartsRequired)
	require.Len(t, s.Talkers(), 1)
	assert.Equal(t, entity.Rect{X: 16, Y: 96, W: 16, H: 16}, s.Workbench())
	assert.Nil(t, s.Robot())
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, int64(42), s.Seed())
	assert.Equal(t, "test", s.MapName())
}

func TestNewSession_Errors(t *testing.T) {
	t.Run("no player spawn", func(t *testing.T) {
		mapCfg := createTestMapConfig()
		mapCfg.Layers[1].Objects = mapCfg.Layers[1].Objects[1:]

		_, err := NewSession(createTestConfig(), mapCfg, 1, testLog())
		assert.ErrorIs(t, err, ErrNoPlayerSpawn)
	})

	t.Run("no collision layer", func(t *testing.T) {
		mapCfg := createTestMapConfig()
		mapCfg.Layers[0].Name = "ground"

		_, err := NewSession(createTestConfig(), mapCfg, 1, testLog())
		assert.ErrorIs(t, err, config.ErrLayerNotFound)
	})
}

func TestSession_Tick_Moves(t *testing.T) {
	s := createTestSession(t)

	s.Tick(system.InputState{Right: true})

	assert.Equal(t, 18.0, s.Player().Pos.X)
	assert.Equal(t, entity.DirRight, s.Player().Facing)
	assert.Equal(t, 1, s.Frame())

	// Border wall stops the player
	tickN(s, system.InputState{Up: true}, 10)
	assert.Equal(t, 16.0, s.Player().Pos.Y)
	assert.Equal(t, entity.DirRight, s.Player().Facing, "blocked move keeps facing")
}

func TestSession_BlockedDiagonalStaysPut(t *testing.T) {
	s := createTestSession(t)

	// Right alone is free, but the diagonal clips the top wall
	s.Tick(system.InputState{Right: true, Up: true})

	assert.Equal(t, entity.Position{X: 16, Y: 16}, s.Player().Pos, "no per-axis retry")
	assert.Equal(t, entity.DirDown, s.Player().Facing, "blocked move keeps facing")
}

func TestSession_CollectPart(t *testing.T) {
	s := createTestSession(t)

	tickN(s, system.InputState{Right: true}, 10)

	assert.True(t, s.Parts()[0].Collected)
	assert.False(t, s.Parts()[1].Collected)
	assert.Equal(t, 1, s.Progress().PartsCollected)

	bubble := s.Talkers()[0].Bubble
	assert.Equal(t, "You found a robot part!", bubble.CurrentText())
	assert.True(t, bubble.Urgent())
	assert.Equal(t, system.DialogLingering, s.Talkers()[0].Dialog.State())
}

func TestSession_Workbench(t *testing.T) {
	t.Run("missing parts", func(t *testing.T) {
		s := createTestSession(t)
		s.Player().Pos = entity.Position{X: 16, Y: 96}

		s.Tick(system.InputState{Interact: true})

		assert.False(t, s.Progress().RobotBuilt())
		assert.Nil(t, s.Robot())
		assert.Equal(t, "You still need more parts to build the robot.", s.Talkers()[0].Bubble.CurrentText())
	})

	t.Run("away from the bench", func(t *testing.T) {
		s := createTestSession(t)
		s.Progress().Collect()
		s.Progress().Collect()

		s.Tick(system.InputState{Interact: true})

		assert.False(t, s.Progress().RobotBuilt())
	})

	t.Run("builds the robot", func(t *testing.T) {
		s := createTestSession(t)
		s.Progress().Collect()
		s.Progress().Collect()
		s.Player().Pos = entity.Position{X: 16, Y: 96}

		s.Tick(system.InputState{Interact: true})

		assert.True(t, s.Progress().RobotBuilt())
		robot := s.Robot()
		require.NotNil(t, robot)
		assert.Equal(t, entity.KindRobot, robot.Kind)
		assert.Equal(t, 96.0, robot.Pos.Y)
		assert.Greater(t, robot.Pos.X, 32.0, "spawned to the right of the player")
		assert.Equal(t, "Robot assembled!", s.Talkers()[0].Bubble.CurrentText())

		// Building again does nothing
		id := robot.ID
		s.Tick(system.InputState{})
		s.Tick(system.InputState{Interact: true})
		assert.Equal(t, id, s.Robot().ID)
	})
}

func TestSession_RobotAllyWins(t *testing.T) {
	s := createTestSession(t)
	s.Progress().Collect()
	s.Progress().Collect()
	s.Player().Pos = entity.Position{X: 16, Y: 96}
	zombie := s.Enemies()[0]

	s.Tick(system.InputState{Interact: true})
	for i := 0; i < 300 && !s.State().IsOver(); i++ {
		s.Tick(system.InputState{})
	}

	assert.Equal(t, state.StateVictory, s.State())
	assert.True(t, zombie.IsDefeated())
	assert.False(t, zombie.Visible)
	assert.Empty(t, s.Enemies())
	assert.Equal(t, 100, s.Player().Health)
	assert.Equal(t, "All zombies defeated!", s.Talkers()[0].Bubble.CurrentText())
}

func TestSession_PlayerAttack(t *testing.T) {
	s := createTestSession(t)
	zombie := s.Enemies()[0]
	zombie.Pos = entity.Position{X: 40, Y: 16}
	zombie.Health = 10
	s.Player().Facing = entity.DirRight

	s.Tick(system.InputState{Attack: true})

	assert.True(t, zombie.IsDefeated())
	assert.Empty(t, s.Enemies())
	assert.Equal(t, entity.PoseAttack, s.Player().Pose)
	assert.Equal(t, state.StatePlaying, s.State(), "no victory without the robot")

	// Pose swaps back after the attack duration (300ms = 18 frames)
	tickN(s, system.InputState{}, 20)
	assert.Equal(t, entity.PoseIdle, s.Player().Pose)
}

func TestSession_ZombieChasesAndBites(t *testing.T) {
	s := createTestSession(t)
	zombie := s.Enemies()[0]
	zombie.Pos = entity.Position{X: 80, Y: 16}

	tickN(s, system.InputState{}, 60)

	assert.Less(t, zombie.Pos.X, 80.0)
	assert.GreaterOrEqual(t, zombie.Pos.X, 55.0, "stops once the player is in reach")
	assert.Equal(t, entity.DirLeft, zombie.Facing)
	assert.Equal(t, 90, s.Player().Health)
}

func TestSession_ZombieBitePose(t *testing.T) {
	s := createTestSession(t)
	zombie := s.Enemies()[0]
	zombie.Pos = entity.Position{X: 40, Y: 16}

	s.Tick(system.InputState{})
	assert.Equal(t, 90, s.Player().Health)
	assert.Equal(t, entity.PoseAttack, zombie.Pose)
	assert.Equal(t, entity.Position{X: 40, Y: 16}, zombie.Pos, "already in reach")

	// 300ms attack duration
	tickN(s, system.InputState{}, 20)
	assert.Equal(t, entity.PoseIdle, zombie.Pose)
}

func TestSession_RobotSwingPose(t *testing.T) {
	s := createTestSession(t)
	s.Progress().Collect()
	s.Progress().Collect()
	s.Player().Pos = entity.Position{X: 16, Y: 96}

	s.Tick(system.InputState{Interact: true})

	robot := s.Robot()
	require.NotNil(t, robot)
	assert.Equal(t, entity.PoseAttack, robot.Pose, "robot swings on the tick it is built")
	assert.Equal(t, 20, s.Enemies()[0].Health)

	tickN(s, system.InputState{}, 20)
	assert.Equal(t, entity.PoseIdle, robot.Pose)
}

func TestSession_GameOver(t *testing.T) {
	s := createTestSession(t)
	s.Player().Health = 0

	s.Tick(system.InputState{})
	assert.Equal(t, state.StateGameOver, s.State())

	frame := s.Frame()
	s.Tick(system.InputState{Right: true})
	assert.Equal(t, frame, s.Frame(), "finished session does not advance")
}

func TestSession_PauseResume(t *testing.T) {
	s := createTestSession(t)

	s.Pause()
	assert.Equal(t, state.StatePaused, s.State())
	s.Tick(system.InputState{Right: true})
	assert.Equal(t, 16.0, s.Player().Pos.X)

	s.Resume()
	s.Tick(system.InputState{Right: true})
	assert.Equal(t, 18.0, s.Player().Pos.X)
}

func TestSession_DialogHintAfterIdle(t *testing.T) {
	s := createTestSession(t)
	talker := s.Talkers()[0]

	s.Tick(system.InputState{})
	assert.Equal(t, system.DialogShowingTrivia, talker.Dialog.State(), "player starts near the NPC")
	assert.Contains(t, createTestConfig().Content.Trivia, talker.Bubble.CurrentText())

	// 10 seconds idle at 60fps
	tickN(s, system.InputState{}, 600)
	assert.Equal(t, system.DialogShowingHint, talker.Dialog.State())
	assert.Equal(t, "Explore the area to find robot parts!", talker.Bubble.CurrentText())
	assert.True(t, talker.Bubble.Urgent())

	s.Tick(system.InputState{Down: true})
	assert.Equal(t, system.DialogLingering, talker.Dialog.State())
}

func TestSession_Language(t *testing.T) {
	cfg := createTestConfig()
	cfg.Locale = createTestLocale(`
msgid "MSG_PART_COLLECTED"
msgstr "¡Has encontrado una pieza del robot!"
`)
	s, err := NewSession(cfg, createTestMapConfig(), 42, testLog())
	require.NoError(t, err)

	tickN(s, system.InputState{Right: true}, 10)

	assert.Equal(t, "¡Has encontrado una pieza del robot!", s.Talkers()[0].Bubble.CurrentText())
}

func TestSession_NoLocaleShowsIDs(t *testing.T) {
	cfg := createTestConfig()
	cfg.Locale = nil
	s, err := NewSession(cfg, createTestMapConfig(), 42, testLog())
	require.NoError(t, err)

	tickN(s, system.InputState{Right: true}, 10)

	assert.Equal(t, msgPartCollected, s.Talkers()[0].Bubble.CurrentText())
}

func TestSession_Deterministic(t *testing.T) {
	script := func(i int) system.InputState {
		return system.InputState{
			Right:  i%90 < 40,
			Down:   i%70 > 35,
			Left:   i%120 > 100,
			Attack: i%25 == 0,
		}
	}

	run := func() *Session {
		s := createTestSession(t)
		for i := 0; i < 600; i++ {
			s.Tick(script(i))
		}
		return s
	}

	a, b := run(), run()

	assert.Equal(t, a.Player().Pos, b.Player().Pos)
	assert.Equal(t, a.Player().Health, b.Player().Health)
	assert.Equal(t, a.Progress().PartsCollected, b.Progress().PartsCollected)
	assert.Equal(t, a.Talkers()[0].Bubble.CurrentText(), b.Talkers()[0].Bubble.CurrentText())
	require.Equal(t, len(a.Enemies()), len(b.Enemies()))
	for i := range a.Enemies() {
		assert.Equal(t, a.Enemies()[i].Pos, b.Enemies()[i].Pos)
	}
}

func TestSession_CloseCancelsTimers(t *testing.T) {
	s := createTestSession(t)

	s.Tick(system.InputState{Attack: true})
	require.Equal(t, 1, s.Scheduler().Pending())

	s.Close()

	assert.Equal(t, 0, s.Scheduler().Pending())
}

func TestSession_Restart(t *testing.T) {
	s := createTestSession(t)
	tickN(s, system.InputState{Right: true, Down: true}, 30)
	s.Player().Health = 0
	s.Tick(system.InputState{})
	require.Equal(t, state.StateGameOver, s.State())

	require.NoError(t, s.Restart(7))

	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, entity.Position{X: 16, Y: 16}, s.Player().Pos)
	assert.Equal(t, 100, s.Player().Health)
	assert.Equal(t, 0, s.Frame())
	assert.Equal(t, int64(7), s.Seed())
	assert.Len(t, s.Enemies(), 1)
	assert.Equal(t, 0, s.Progress().PartsCollected)
}
