package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/lafriks/go-tiled"
	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"
)

// LocaleDomain is the catalog name under locales/<lang>/LC_MESSAGES
const LocaleDomain = "default"

var ErrLocaleNotFound = errors.New("locale not found")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Entities *EntitiesConfig
	Content  *ContentConfig
	Locale   *gotext.Locale
}

// Loader loads game configuration from files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads game.json, filling unset values with defaults
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := DefaultSettings()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadContent loads content.yaml (trivia pool)
func (l *Loader) LoadContent() (*ContentConfig, error) {
	data, err := fs.ReadFile(l.fsys, "content.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read content.yaml: %w", err)
	}

	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse content.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadLocale loads the message catalog locales/<lang>/LC_MESSAGES/default.po
func (l *Loader) LoadLocale(lang string) (*gotext.Locale, error) {
	loc := gotext.NewLocaleFSWithPath(lang, l.fsys, "locales")
	if loc.GetActualLanguage(LocaleDomain) == "" {
		return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, lang)
	}
	loc.AddDomain(LocaleDomain)

	return loc, nil
}

// LoadMap loads a Tiled JSON map from maps/<name>.json
func (l *Loader) LoadMap(name string) (*MapConfig, error) {
	p := "maps/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	var cfg MapConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}
	cfg.Name = name

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadTMX loads a Tiled TMX map from maps/<name>.tmx.
// Tilesets must be embedded in the map file.
func (l *Loader) LoadTMX(name string) (*MapConfig, error) {
	p := "maps/" + name + ".tmx"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	tm, err := tiled.LoadReader(path.Join(l.basePath, "maps"), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}

	cfg := FromTiled(tm)
	cfg.Name = name

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadAll loads all base configurations (settings, entities, content, locale)
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	content, err := l.LoadContent()
	if err != nil {
		return nil, err
	}

	locale, err := l.LoadLocale(settings.Language)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Entities: entities,
		Content:  content,
		Locale:   locale,
	}, nil
}
