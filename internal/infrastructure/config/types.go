package config

import "time"

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Movement MovementConfig `json:"movement"`
	Combat   CombatConfig   `json:"combat"`
	Dialog   DialogConfig   `json:"dialog"`
	Logging  LoggingConfig  `json:"logging"`
	Language string         `json:"language"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type MovementConfig struct {
	// WallSlide retries a blocked diagonal move one axis at a time
	WallSlide bool `json:"wallSlide"`
}

type CombatConfig struct {
	ShortReach       float64        `json:"shortReach"`
	LongReach        float64        `json:"longReach"`
	AttackDurationMs int            `json:"attackDurationMs"`
	Offscreen        PositionConfig `json:"offscreen"`
}

// AttackDuration is how long the attack pose is held before swapping back
func (c CombatConfig) AttackDuration() time.Duration {
	return time.Duration(c.AttackDurationMs) * time.Millisecond
}

type DialogConfig struct {
	UpdateIntervalMs      int     `json:"updateIntervalMs"`
	InactivityThresholdMs int     `json:"inactivityThresholdMs"`
	LingerDurationMs      int     `json:"lingerDurationMs"`
	UrgentDurationMs      int     `json:"urgentDurationMs"`
	ProximityRadius       float64 `json:"proximityRadius"`
}

func (c DialogConfig) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateIntervalMs) * time.Millisecond
}

func (c DialogConfig) InactivityThreshold() time.Duration {
	return time.Duration(c.InactivityThresholdMs) * time.Millisecond
}

func (c DialogConfig) LingerDuration() time.Duration {
	return time.Duration(c.LingerDurationMs) * time.Millisecond
}

func (c DialogConfig) UrgentDuration() time.Duration {
	return time.Duration(c.UrgentDurationMs) * time.Millisecond
}

type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // "json" or "text"
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player ActorConfig `json:"player"`
	Robot  ActorConfig `json:"robot"`
	Zombie ActorConfig `json:"zombie"`
	NPC    BoxConfig   `json:"npc"`
	Part   BoxConfig   `json:"part"`
}

type ActorConfig struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Speed          float64 `json:"speed"`
	MaxHealth      int     `json:"maxHealth"`
	AttackPower    int     `json:"attackPower"`
	AttackCooldown float64 `json:"attackCooldown,omitempty"` // seconds
	DetectRange    float64 `json:"detectRange,omitempty"`
}

type BoxConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ContentConfig is the root config for content.yaml
type ContentConfig struct {
	Trivia []string `yaml:"trivia"`
}
