package playing

import (
	"io"
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

const testCatalog = `
msgid ""
msgstr ""
"Language: en\n"

msgid "HINT_EXPLORE"
msgstr "Explore the area to find robot parts!"

msgid "HINT_WORKBENCH"
msgstr "You have all the parts! Head to the workbench to build your robot."

msgid "HINT_ROBOT_READY"
msgstr "Your robot is ready! Defeat the zombies together."

msgid "MSG_PART_COLLECTED"
msgstr "You found a robot part!"

msgid "MSG_NEED_PARTS"
msgstr "You still need more parts to build the robot."

msgid "MSG_ROBOT_BUILT"
msgstr "Robot assembled!"

msgid "MSG_VICTORY"
msgstr "All zombies defeated!"
`

func createTestLocale(catalog string) *gotext.Locale {
	po := gotext.NewPo()
	po.Parse([]byte(catalog))
	loc := gotext.NewLocale("", "en")
	loc.AddTranslator(config.LocaleDomain, po)
	return loc
}

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	settings := config.DefaultSettings()
	settings.Dialog.InactivityThresholdMs = 8000

	content := &config.ContentConfig{
		Trivia: []string{"Robots need power.", "Zombies hate sunlight."},
	}

	return &config.GameConfig{
		Settings: settings,
		Entities: &config.EntitiesConfig{
			Player: config.ActorConfig{Width: 16, Height: 16, Speed: 2, MaxHealth: 100, AttackPower: 20, AttackCooldown: 0.4},
			Robot:  config.ActorConfig{Width: 16, Height: 16, Speed: 1.5, MaxHealth: 150, AttackPower: 30, AttackCooldown: 0.8, DetectRange: 160},
			Zombie: config.ActorConfig{Width: 16, Height: 16, Speed: 0.6, MaxHealth: 50, AttackPower: 10, AttackCooldown: 1.0, DetectRange: 120},
			NPC:    config.BoxConfig{Width: 16, Height: 16},
			Part:   config.BoxConfig{Width: 8, Height: 8},
		},
		Content: content,
		Locale:  createTestLocale(testCatalog),
	}
}

// createTestMapConfig creates a 10x8 walled room:
// player (16,16), npc (80,16), zombie (128,96), parts (48,16) and (16,80),
// workbench (16,96)
func createTestMapConfig() *config.MapConfig {
	const w, h = 10, 8
	data := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				data[y*w+x] = 1
			}
		}
	}

	return &config.MapConfig{
		Name:       "test",
		Width:      w,
		Height:     h,
		TileWidth:  16,
		TileHeight: 16,
		Layers: []config.MapLayerConfig{
			{Name: "collision", Type: "tilelayer", Width: w, Height: h, Data: data},
			{Name: "spawns", Type: "objectgroup", Objects: []config.MapObjectConfig{
				{ID: 1, Name: "player", X: 16, Y: 16},
				{ID: 2, Name: "npc", X: 80, Y: 16},
				{ID: 3, Name: "zombie", X: 128, Y: 96},
				{ID: 4, Name: "part", X: 48, Y: 16},
				{ID: 5, Name: "part", X: 16, Y: 80},
				{ID: 6, Name: "workbench", X: 16, Y: 96, Width: 16, Height: 16},
			}},
		},
		Tilesets: []config.TilesetRefConfig{{FirstGID: 1, Name: "overworld"}},
	}
}

func createTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(createTestConfig(), createTestMapConfig(), 42, testLog())
	require.NoError(t, err)
	return s
}
