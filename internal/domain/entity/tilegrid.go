package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidGrid is returned when a grid is built with non-positive dimensions
var ErrInvalidGrid = errors.New("invalid tile grid")

// TileCoord addresses a single tile
type TileCoord struct {
	X, Y int
}

// TileGrid is the collision oracle for a loaded map.
// The blocked set is built once and never recomputed.
type TileGrid struct {
	tileSize int
	width    int
	height   int
	blocked  mapset.Set[TileCoord]
}

// NewTileGrid creates a grid of width x height tiles with the given blocked tiles
func NewTileGrid(tileSize, width, height int, blocked []TileCoord) (*TileGrid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidGrid, tileSize)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, width, height)
	}

	set := mapset.New[TileCoord]()
	for _, c := range blocked {
		set.Put(c)
	}

	return &TileGrid{
		tileSize: tileSize,
		width:    width,
		height:   height,
		blocked:  set,
	}, nil
}

// NewTileGridFromLayer builds a grid from a row-major tile-id layer.
// Any nonzero id marks its tile as blocked.
func NewTileGridFromLayer(tileSize int, layer [][]int) (*TileGrid, error) {
	height := len(layer)
	width := 0
	for _, row := range layer {
		if len(row) > width {
			width = len(row)
		}
	}

	var blocked []TileCoord
	for y, row := range layer {
		for x, id := range row {
			if id != 0 {
				blocked = append(blocked, TileCoord{X: x, Y: y})
			}
		}
	}

	return NewTileGrid(tileSize, width, height, blocked)
}

// PixelToTile returns the tile containing the pixel (x, y)
func (g *TileGrid) PixelToTile(x, y float64) TileCoord {
	ts := float64(g.tileSize)
	return TileCoord{
		X: int(math.Floor(x / ts)),
		Y: int(math.Floor(y / ts)),
	}
}

// IsBlocked reports whether the tile is in the blocked set.
// Tiles outside the grid are not blocked; callers clamp to world bounds.
func (g *TileGrid) IsBlocked(tx, ty int) bool {
	return g.blocked.Has(TileCoord{X: tx, Y: ty})
}

// CanMoveToArea reports whether the rect [x, x+w) x [y, y+h) touches no blocked tile.
// w and h must be positive.
func (g *TileGrid) CanMoveToArea(x, y, w, h float64) bool {
	start := g.PixelToTile(x, y)
	end := g.PixelToTile(x+w-1, y+h-1)

	for ty := start.Y; ty <= end.Y; ty++ {
		for tx := start.X; tx <= end.X; tx++ {
			if g.IsBlocked(tx, ty) {
				return false
			}
		}
	}

	return true
}

// TileSize returns the edge length of a tile in pixels
func (g *TileGrid) TileSize() int { return g.tileSize }

// Width returns the grid width in tiles
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in tiles
func (g *TileGrid) Height() int { return g.height }

// PixelWidth returns the grid width in pixels
func (g *TileGrid) PixelWidth() float64 { return float64(g.width * g.tileSize) }

// PixelHeight returns the grid height in pixels
func (g *TileGrid) PixelHeight() float64 { return float64(g.height * g.tileSize) }

// BlockedCount returns the number of blocked tiles
func (g *TileGrid) BlockedCount() int { return g.blocked.Size() }
