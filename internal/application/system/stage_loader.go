package system

import (
	"fmt"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

// BuildTileGrid converts a map's collision layer into a TileGrid.
// Nonzero tile ids are blocked; tileset first gids only matter to rendering.
func BuildTileGrid(cfg *config.MapConfig, layerName string) (*entity.TileGrid, error) {
	if layerName == "" {
		layerName = config.DefaultCollisionLayer
	}

	layer, err := cfg.TileLayer(layerName)
	if err != nil {
		return nil, err
	}

	grid, err := entity.NewTileGridFromLayer(cfg.TileWidth, layer.Rows())
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", cfg.Name, err)
	}

	return grid, nil
}
