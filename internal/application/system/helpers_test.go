package system

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

// createTestGrid returns an 8x6 grid of 16px tiles with tile (4,3) blocked
func createTestGrid(t *testing.T) *entity.TileGrid {
	t.Helper()
	grid, err := entity.NewTileGrid(16, 8, 6, []entity.TileCoord{{X: 4, Y: 3}})
	require.NoError(t, err)
	return grid
}

// createTestMovement uses the shipped movement settings (no wall slide)
func createTestMovement(grid *entity.TileGrid) *MovementSystem {
	return NewMovementSystem(grid, config.DefaultSettings().Movement, testLog())
}

func createTestResolver() *CombatResolver {
	return NewCombatResolver(config.CombatConfig{
		ShortReach: 40,
		LongReach:  100,
		Offscreen:  config.PositionConfig{X: -1000, Y: -1000},
	}, testLog())
}

// createTestActor returns a 16x16 actor with speed 2, 50 HP and 20 attack
func createTestActor(id entity.EntityID, kind entity.Kind, x, y float64) *entity.Actor {
	return entity.NewActor(id, kind, entity.NewMover(x, y, 16, 16, 2), 50, 20)
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingView remembers every call made on it
type recordingView struct {
	shown   []string
	urgent  []string
	hides   int
	current string
}

func (v *recordingView) ShowDialog(text string) {
	v.shown = append(v.shown, text)
	v.current = text
}

func (v *recordingView) ShowUrgentDialog(text string) {
	v.urgent = append(v.urgent, text)
	v.current = text
}

func (v *recordingView) HideDialog() {
	v.hides++
	v.current = ""
}

func (v *recordingView) CurrentText() string { return v.current }
