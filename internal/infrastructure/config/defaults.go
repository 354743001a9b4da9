package config

// DefaultSettings returns the tuning used when game.json leaves a value unset
func DefaultSettings() *SettingsConfig {
	return &SettingsConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Movement: MovementConfig{
			WallSlide: false,
		},
		Combat: CombatConfig{
			ShortReach:       40,
			LongReach:        100,
			AttackDurationMs: 300,
			Offscreen:        PositionConfig{X: -1000, Y: -1000},
		},
		Dialog: DialogConfig{
			UpdateIntervalMs:      500,
			InactivityThresholdMs: 30000,
			LingerDurationMs:      3000,
			UrgentDurationMs:      3000,
			ProximityRadius:       90,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Language: "en",
	}
}
