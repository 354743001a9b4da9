package playing

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/state"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/system"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

// Spawn object names in the map's object layers
const (
	spawnPlayer    = "player"
	spawnNPC       = "npc"
	spawnZombie    = "zombie"
	spawnPart      = "part"
	spawnWorkbench = "workbench"
)

// Message IDs of system announcements in the text catalog
const (
	msgPartCollected = "MSG_PART_COLLECTED"
	msgNeedParts     = "MSG_NEED_PARTS"
	msgRobotBuilt    = "MSG_ROBOT_BUILT"
	msgVictory       = "MSG_VICTORY"
)

// followDistance is how far the robot trails behind the player
const followDistance = 24.0

// ErrNoPlayerSpawn is returned when a map has no player spawn object
var ErrNoPlayerSpawn = errors.New("map has no player spawn")

// clockEpoch is the simulated start time; any fixed value keeps replays stable
var clockEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Talker is an NPC with its dialog and speech bubble
type Talker struct {
	NPC    *entity.NPC
	Dialog *system.DialogStateMachine
	Bubble *system.Bubble
}

// Session is one run of the game on one map. It owns every entity and
// system and advances them one frame per Tick. It never touches ebiten,
// so the same code runs on screen, in tests and in headless replays.
type Session struct {
	cfg    *config.GameConfig
	mapCfg *config.MapConfig
	log    *logrus.Entry
	dt     float64
	seed   int64
	rng    *rand.Rand
	clock  *system.TickClock
	tr     system.Translator

	grid      *entity.TileGrid
	movement  *system.MovementSystem
	input     *system.InputSystem
	resolver  *system.CombatResolver
	scheduler *system.Scheduler
	encounter *system.Encounter
	chase     *system.ChaseAI
	ally      *system.AllyAI

	state     state.GameState
	frame     int
	nextID    entity.EntityID
	player    *entity.Actor
	robot     *entity.Actor
	talkers   []*Talker
	parts     []*entity.Part
	workbench entity.Rect
	progress  *entity.Progress
}

// NewSession builds a session for the map using seed for every random choice
func NewSession(cfg *config.GameConfig, mapCfg *config.MapConfig, seed int64, log *logrus.Entry) (*Session, error) {
	grid, err := system.BuildTileGrid(mapCfg, config.DefaultCollisionLayer)
	if err != nil {
		return nil, fmt.Errorf("failed to build collision grid: %w", err)
	}

	framerate := cfg.Settings.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	s := &Session{
		cfg:    cfg,
		mapCfg: mapCfg,
		log:    log,
		dt:     1.0 / float64(framerate),
		grid:   grid,
		tr:     translator(cfg),
	}
	if err := s.reset(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart rebuilds every entity with a new seed
func (s *Session) Restart(seed int64) error {
	s.scheduler.Close()
	return s.reset(seed)
}

func (s *Session) reset(seed int64) error {
	settings := s.cfg.Settings

	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.clock = system.NewTickClock(clockEpoch)
	s.movement = system.NewMovementSystem(s.grid, settings.Movement, s.log.WithField("system", "movement"))
	s.input = system.NewInputSystem(s.movement)
	s.resolver = system.NewCombatResolver(settings.Combat, s.log.WithField("system", "combat"))
	s.scheduler = system.NewScheduler()
	s.encounter = system.NewEncounter(s.resolver, s.scheduler, settings.Combat.AttackDuration(), s.log.WithField("system", "encounter"))
	s.chase = system.NewChaseAI(s.movement, s.encounter, s.log.WithField("system", "chase"))
	s.ally = system.NewAllyAI(s.movement, s.encounter, followDistance, s.log.WithField("system", "ally"))

	s.state = state.StatePlaying
	s.frame = 0
	s.nextID = 0
	s.player = nil
	s.robot = nil
	s.talkers = nil
	s.parts = nil

	if err := s.spawn(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"map":     s.mapCfg.Name,
		"seed":    seed,
		"zombies": s.encounter.Enemies().Len(),
		"parts":   len(s.parts),
		"npcs":    len(s.talkers),
	}).Info("Session started")
	return nil
}

func (s *Session) spawn() error {
	ents := s.cfg.Entities

	players := s.mapCfg.Objects(spawnPlayer)
	if len(players) == 0 {
		return fmt.Errorf("map %s: %w", s.mapCfg.Name, ErrNoPlayerSpawn)
	}
	s.player = s.newActor(entity.KindPlayer, ents.Player, players[0].X, players[0].Y)
	s.encounter.SetPlayer(s.player)

	for _, obj := range s.mapCfg.Objects(spawnZombie) {
		s.encounter.Enemies().Add(s.newActor(entity.KindZombie, ents.Zombie, obj.X, obj.Y))
	}

	for _, obj := range s.mapCfg.Objects(spawnPart) {
		s.parts = append(s.parts, &entity.Part{
			ID:   s.allocID(),
			Pos:  entity.Position{X: obj.X, Y: obj.Y},
			Size: entity.Size{W: ents.Part.Width, H: ents.Part.Height},
		})
	}
	s.progress = entity.NewProgress(len(s.parts))

	if benches := s.mapCfg.Objects(spawnWorkbench); len(benches) > 0 {
		b := benches[0]
		w, h := b.Width, b.Height
		if w <= 0 || h <= 0 {
			w, h = float64(s.grid.TileSize()), float64(s.grid.TileSize())
		}
		s.workbench = entity.Rect{X: b.X, Y: b.Y, W: w, H: h}
	} else {
		s.workbench = entity.Rect{}
	}

	dialogCfg := system.NewDialogConfig(s.cfg.Settings.Dialog)
	hints := system.NewHintMessages(s.tr)
	for _, obj := range s.mapCfg.Objects(spawnNPC) {
		npc := &entity.NPC{
			ID:   s.allocID(),
			Name: obj.Name,
			Pos:  entity.Position{X: obj.X, Y: obj.Y},
			Size: entity.Size{W: ents.NPC.Width, H: ents.NPC.Height},
		}
		bubble := &system.Bubble{}
		dialog := system.NewDialogStateMachine(npc, bubble, s.progress, s.cfg.Content.Trivia, dialogCfg, hints,
			s.clock, s.rng, s.log.WithFields(logrus.Fields{"system": "dialog", "npc_id": npc.ID}))
		s.talkers = append(s.talkers, &Talker{NPC: npc, Dialog: dialog, Bubble: bubble})
	}

	return nil
}

func (s *Session) newActor(kind entity.Kind, ac config.ActorConfig, x, y float64) *entity.Actor {
	a := entity.NewActor(s.allocID(), kind, entity.NewMover(x, y, ac.Width, ac.Height, ac.Speed), ac.MaxHealth, ac.AttackPower)
	a.AttackCooldown = ac.AttackCooldown
	a.DetectRange = ac.DetectRange
	return a
}

func (s *Session) allocID() entity.EntityID {
	s.nextID++
	return s.nextID
}

// Tick advances the session by one frame of input
func (s *Session) Tick(in system.InputState) {
	if s.state != state.StatePlaying {
		return
	}

	s.frame++
	s.clock.Advance(s.dt)
	now := s.clock.Now()

	s.scheduler.Run(now)
	s.player.TickCooldown(s.dt)

	if in.Any() {
		for _, t := range s.talkers {
			t.Dialog.MarkActive()
		}
	}

	for _, intent := range in.Intents(s.player.ID) {
		switch it := intent.(type) {
		case system.MoveIntent:
			s.input.ApplyMove(s.player, it)
		case system.AttackIntent:
			if _, err := s.encounter.PlayerAttack(now); err != nil {
				s.log.WithError(err).Error("Player attack failed")
			}
		case system.InteractIntent:
			s.interact()
		}
	}

	s.collectParts()

	enemies := s.encounter.Enemies()
	s.chase.Update(enemies.Active(), s.player, s.dt, now)
	if s.robot != nil {
		s.ally.Update(s.robot, s.player, enemies.Active(), s.dt, now)
		s.encounter.Prune()
	}

	for _, t := range s.talkers {
		t.Dialog.Update(s.player.Pos.X, s.player.Pos.Y)
	}

	s.checkEnd()
}

func (s *Session) collectParts() {
	bounds := s.player.Bounds()
	for _, part := range s.parts {
		if part.Collected || !bounds.Intersects(part.Bounds()) {
			continue
		}
		part.Collected = true
		s.progress.Collect()
		s.announce(s.tr.Get(msgPartCollected))

		s.log.WithFields(logrus.Fields{
			"part_id":   part.ID,
			"collected": s.progress.PartsCollected,
			"required":  s.progress.PartsRequired,
		}).Info("Part collected")
	}
}

func (s *Session) interact() {
	if s.workbench.W == 0 || !s.player.Bounds().Intersects(s.workbench) {
		return
	}

	err := s.progress.BuildRobot()
	switch {
	case errors.Is(err, entity.ErrPartsMissing):
		s.announce(s.tr.Get(msgNeedParts))
	case errors.Is(err, entity.ErrRobotAlreadyBuilt):
		return
	case err != nil:
		s.log.WithError(err).Error("Robot build failed")
	default:
		s.spawnRobot()
		s.announce(s.tr.Get(msgRobotBuilt))
	}
}

// spawnRobot places the robot on the first free side of the player
func (s *Session) spawnRobot() {
	rc := s.cfg.Entities.Robot
	p := s.player.Pos
	gap := s.player.Size.W + 2
	robot := s.newActor(entity.KindRobot, rc, p.X, p.Y)

	candidates := []entity.Position{
		{X: p.X + gap, Y: p.Y},
		{X: p.X - gap, Y: p.Y},
		{X: p.X, Y: p.Y + gap},
		{X: p.X, Y: p.Y - gap},
	}
	for _, c := range candidates {
		if s.movement.ClampToWorld(&robot.Mover, c) == c && s.movement.CanOccupy(&robot.Mover, c) {
			robot.Pos = c
			break
		}
	}

	s.robot = robot
	s.log.WithFields(logrus.Fields{
		"robot_id": robot.ID,
		"x":        robot.Pos.X,
		"y":        robot.Pos.Y,
	}).Info("Robot assembled")
}

// announce shows a system message on every NPC for the urgent duration
func (s *Session) announce(text string) {
	if text == "" {
		return
	}
	d := s.cfg.Settings.Dialog.UrgentDuration()
	for _, t := range s.talkers {
		t.Dialog.ShowUrgentDialogFor(text, d)
	}
}

// translator returns the loaded catalog, or an empty one that echoes message IDs
func translator(cfg *config.GameConfig) system.Translator {
	if cfg.Locale == nil {
		return gotext.NewPo()
	}
	return cfg.Locale
}

func (s *Session) checkEnd() {
	if s.player.IsDefeated() {
		s.state = state.StateGameOver
		s.log.WithFields(logrus.Fields{
			"frame":  s.frame,
			"health": s.player.Health,
		}).Info("Game over")
		return
	}

	if s.progress.RobotBuilt() && s.encounter.Enemies().Len() == 0 {
		s.state = state.StateVictory
		s.announce(s.tr.Get(msgVictory))
		s.log.WithField("frame", s.frame).Info("Victory")
	}
}

// Pause stops Tick from advancing the session
func (s *Session) Pause() {
	if s.state == state.StatePlaying {
		s.state = state.StatePaused
	}
}

// Resume continues a paused session
func (s *Session) Resume() {
	if s.state == state.StatePaused {
		s.state = state.StatePlaying
	}
}

// Close cancels pending timers; nothing scheduled fires afterwards
func (s *Session) Close() {
	s.scheduler.Close()
}

func (s *Session) State() state.GameState { return s.state }
func (s *Session) Frame() int { return s.frame }
func (s *Session) Seed() int64 { return s.seed }
func (s *Session) MapName() string { return s.mapCfg.Name }
func (s *Session) Grid() *entity.TileGrid { return s.grid }
func (s *Session) Player() *entity.Actor { return s.player }
func (s *Session) Robot() *entity.Actor { return s.robot }
func (s *Session) Enemies() []*entity.Actor { return s.encounter.Enemies().Active() }
func (s *Session) Parts() []*entity.Part { return s.parts }
func (s *Session) Talkers() []*Talker { return s.talkers }
func (s *Session) Workbench() entity.Rect { return s.workbench }
func (s *Session) Progress() *entity.Progress { return s.progress }
func (s *Session) Scheduler() *system.Scheduler { return s.scheduler }
