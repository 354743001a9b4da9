package config

import "github.com/lafriks/go-tiled"

// FromTiled converts a decoded TMX map into the MapConfig shape used by the JSON loader
func FromTiled(tm *tiled.Map) *MapConfig {
	cfg := &MapConfig{
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
	}

	for _, ts := range tm.Tilesets {
		cfg.Tilesets = append(cfg.Tilesets, TilesetRefConfig{
			FirstGID: int(ts.FirstGID),
			Name:     ts.Name,
			Source:   ts.Source,
		})
	}

	for _, layer := range tm.Layers {
		data := make([]int, len(layer.Tiles))
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			data[i] = int(tile.Tileset.FirstGID + tile.ID)
		}
		cfg.Layers = append(cfg.Layers, MapLayerConfig{
			Name:   layer.Name,
			Type:   "tilelayer",
			Width:  tm.Width,
			Height: tm.Height,
			Data:   data,
		})
	}

	for _, group := range tm.ObjectGroups {
		objects := make([]MapObjectConfig, 0, len(group.Objects))
		for _, o := range group.Objects {
			objects = append(objects, MapObjectConfig{
				ID:     int(o.ID),
				Name:   o.Name,
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
			})
		}
		cfg.Layers = append(cfg.Layers, MapLayerConfig{
			Name:    group.Name,
			Type:    "objectgroup",
			Objects: objects,
		})
	}

	return cfg
}
