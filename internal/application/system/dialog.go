package system

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

// DialogState is the observable state of an NPC dialog
type DialogState int

const (
	DialogIdle DialogState = iota
	DialogShowingTrivia
	DialogShowingHint
	DialogLingering
)

// String returns the string representation of the dialog state
func (s DialogState) String() string {
	switch s {
	case DialogIdle:
		return "idle"
	case DialogShowingTrivia:
		return "trivia"
	case DialogShowingHint:
		return "hint"
	case DialogLingering:
		return "lingering"
	default:
		return "unknown"
	}
}

// DialogView is where an NPC's speech ends up
type DialogView interface {
	ShowDialog(text string)
	ShowUrgentDialog(text string)
	HideDialog()
	CurrentText() string
}

// ProgressSource exposes the quest flags that pick a hint
type ProgressSource interface {
	RobotBuilt() bool
	AllPartsCollected() bool
}

// DialogConfig holds dialog timings
type DialogConfig struct {
	UpdateInterval      time.Duration
	InactivityThreshold time.Duration
	LingerDuration      time.Duration
	ProximityRadius     float64
}

// NewDialogConfig converts the settings block into a DialogConfig
func NewDialogConfig(cfg config.DialogConfig) DialogConfig {
	return DialogConfig{
		UpdateInterval:      cfg.UpdateInterval(),
		InactivityThreshold: cfg.InactivityThreshold(),
		LingerDuration:      cfg.LingerDuration(),
		ProximityRadius:     cfg.ProximityRadius,
	}
}

// Message IDs of the progress hints in the text catalog
const (
	HintExploreID    = "HINT_EXPLORE"
	HintWorkbenchID  = "HINT_WORKBENCH"
	HintRobotReadyID = "HINT_ROBOT_READY"
)

// Translator looks up catalog text by message ID.
// *gotext.Locale and *gotext.Po both satisfy it.
type Translator interface {
	Get(str string, vars ...interface{}) string
}

// HintMessages are the progress-dependent hints
type HintMessages struct {
	Explore    string
	Workbench  string
	RobotReady string
}

// NewHintMessages looks the hints up in the catalog
func NewHintMessages(tr Translator) HintMessages {
	return HintMessages{
		Explore:    tr.Get(HintExploreID),
		Workbench:  tr.Get(HintWorkbenchID),
		RobotReady: tr.Get(HintRobotReadyID),
	}
}

// DialogStateMachine decides what one NPC says.
// Not safe for concurrent use.
type DialogStateMachine struct {
	npc      *entity.NPC
	view     DialogView
	progress ProgressSource
	trivia   []string
	cfg      DialogConfig
	hints    HintMessages
	clock    Clock
	rng      *rand.Rand
	log      *logrus.Entry

	stickyTrivia   string
	showingHint    bool
	lingerUntil    time.Time // zero when not lingering
	lastActivity   time.Time
	lastEvaluation time.Time // zero before the first evaluation
}

// NewDialogStateMachine creates a dialog for an NPC.
// Empty trivia lines are dropped; an empty pool means the NPC never chats.
func NewDialogStateMachine(
	npc *entity.NPC,
	view DialogView,
	progress ProgressSource,
	trivia []string,
	cfg DialogConfig,
	hints HintMessages,
	clock Clock,
	rng *rand.Rand,
	log *logrus.Entry,
) *DialogStateMachine {
	pool := make([]string, 0, len(trivia))
	for _, t := range trivia {
		if t != "" {
			pool = append(pool, t)
		}
	}

	return &DialogStateMachine{
		npc:          npc,
		view:         view,
		progress:     progress,
		trivia:       pool,
		cfg:          cfg,
		hints:        hints,
		clock:        clock,
		rng:          rng,
		log:          log,
		lastActivity: clock.Now(),
	}
}

// Update evaluates the dialog against the player position.
// Calls closer together than UpdateInterval are ignored.
func (d *DialogStateMachine) Update(playerX, playerY float64) {
	now := d.clock.Now()
	if !d.lastEvaluation.IsZero() && now.Sub(d.lastEvaluation) < d.cfg.UpdateInterval {
		return
	}
	d.lastEvaluation = now

	// Lingering suppresses everything until it expires
	if !d.lingerUntil.IsZero() {
		if now.After(d.lingerUntil) {
			d.clear()
		}
		return
	}

	if !d.showingHint && now.Sub(d.lastActivity) > d.cfg.InactivityThreshold {
		hint := d.selectHint()
		d.view.ShowUrgentDialog(hint)
		d.showingHint = true
		d.lastActivity = now
		d.log.WithFields(logrus.Fields{
			"npc":  d.npc.Name,
			"hint": hint,
		}).Debug("Showing hint")
		return
	}

	// A hint stays until the player acts
	if d.showingHint {
		return
	}

	dist := d.npc.Pos.DistanceTo(entity.Position{X: playerX, Y: playerY})
	if !(dist <= d.cfg.ProximityRadius) {
		if d.stickyTrivia != "" || d.view.CurrentText() != "" {
			d.view.HideDialog()
		}
		d.stickyTrivia = ""
		return
	}

	if len(d.trivia) == 0 {
		return
	}

	if d.stickyTrivia == "" {
		d.stickyTrivia = d.trivia[d.rng.Intn(len(d.trivia))]
		d.view.ShowDialog(d.stickyTrivia)
		d.log.WithFields(logrus.Fields{
			"npc":    d.npc.Name,
			"trivia": d.stickyTrivia,
		}).Debug("Picked trivia")
		return
	}

	if d.view.CurrentText() != d.stickyTrivia {
		d.view.ShowDialog(d.stickyTrivia)
	}
}

// MarkActive records player input. A visible hint starts lingering.
func (d *DialogStateMachine) MarkActive() {
	now := d.clock.Now()
	d.lastActivity = now
	if d.showingHint && d.lingerUntil.IsZero() {
		d.lingerUntil = now.Add(d.cfg.LingerDuration)
	}
}

// ShowUrgentDialog shows text immediately without touching dialog state
func (d *DialogStateMachine) ShowUrgentDialog(text string) {
	d.view.ShowUrgentDialog(text)
}

// ShowUrgentDialogFor shows text and keeps it up for at least dur by lingering
func (d *DialogStateMachine) ShowUrgentDialogFor(text string, dur time.Duration) {
	d.view.ShowUrgentDialog(text)
	d.stickyTrivia = ""
	d.showingHint = false
	d.lingerUntil = d.clock.Now().Add(dur)
}

// State returns the current dialog state
func (d *DialogStateMachine) State() DialogState {
	switch {
	case !d.lingerUntil.IsZero():
		return DialogLingering
	case d.showingHint:
		return DialogShowingHint
	case d.stickyTrivia != "":
		return DialogShowingTrivia
	default:
		return DialogIdle
	}
}

// StickyTrivia returns the trivia line held for the current proximity episode
func (d *DialogStateMachine) StickyTrivia() string {
	return d.stickyTrivia
}

func (d *DialogStateMachine) selectHint() string {
	switch {
	case d.progress != nil && d.progress.RobotBuilt():
		return d.hints.RobotReady
	case d.progress != nil && d.progress.AllPartsCollected():
		return d.hints.Workbench
	default:
		return d.hints.Explore
	}
}

func (d *DialogStateMachine) clear() {
	d.view.HideDialog()
	d.stickyTrivia = ""
	d.showingHint = false
	d.lingerUntil = time.Time{}
}
