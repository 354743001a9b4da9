package config

import (
	"errors"
	"fmt"
)

// DefaultCollisionLayer is the tile layer consulted for blocked tiles
const DefaultCollisionLayer = "collision"

// ErrLayerNotFound is returned when a map has no layer with the requested name
var ErrLayerNotFound = errors.New("layer not found")

// MapConfig mirrors the Tiled JSON map export
type MapConfig struct {
	Name       string             `json:"-"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	TileWidth  int                `json:"tilewidth"`
	TileHeight int                `json:"tileheight"`
	Layers     []MapLayerConfig   `json:"layers"`
	Tilesets   []TilesetRefConfig `json:"tilesets"`
}

type MapLayerConfig struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"` // "tilelayer" or "objectgroup"
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Data    []int             `json:"data,omitempty"`
	Objects []MapObjectConfig `json:"objects,omitempty"`
}

type MapObjectConfig struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TilesetRefConfig only matters to rendering; collision ignores FirstGID
type TilesetRefConfig struct {
	FirstGID int    `json:"firstgid"`
	Name     string `json:"name"`
	Source   string `json:"source,omitempty"`
}

// Validate checks the invariants collision relies on
func (m *MapConfig) Validate() error {
	if m.TileWidth <= 0 || m.TileWidth != m.TileHeight {
		return fmt.Errorf("map %s: tiles must be square, got %dx%d", m.Name, m.TileWidth, m.TileHeight)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map %s: invalid size %dx%d", m.Name, m.Width, m.Height)
	}
	for _, l := range m.Layers {
		if l.Type != "tilelayer" {
			continue
		}
		if len(l.Data) != l.Width*l.Height {
			return fmt.Errorf("map %s: layer %s has %d tiles, want %d", m.Name, l.Name, len(l.Data), l.Width*l.Height)
		}
	}
	return nil
}

// TileLayer returns the tile layer with the given name
func (m *MapConfig) TileLayer(name string) (*MapLayerConfig, error) {
	for i := range m.Layers {
		if m.Layers[i].Type == "tilelayer" && m.Layers[i].Name == name {
			return &m.Layers[i], nil
		}
	}
	return nil, fmt.Errorf("map %s: tile layer %q: %w", m.Name, name, ErrLayerNotFound)
}

// Objects returns every object across all object layers with the given name
func (m *MapConfig) Objects(name string) []MapObjectConfig {
	var out []MapObjectConfig
	for _, l := range m.Layers {
		if l.Type != "objectgroup" {
			continue
		}
		for _, o := range l.Objects {
			if o.Name == name {
				out = append(out, o)
			}
		}
	}
	return out
}

// Rows returns the layer's tile ids as a row-major 2D slice
func (l *MapLayerConfig) Rows() [][]int {
	rows := make([][]int, l.Height)
	for y := 0; y < l.Height; y++ {
		rows[y] = l.Data[y*l.Width : (y+1)*l.Width]
	}
	return rows
}
