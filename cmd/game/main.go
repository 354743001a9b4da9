package main

import (
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/game"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/replay"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/scene/playing"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/logger"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the outcome")
	mapFlag := flag.String("map", "demo", "Map name under configs/maps")
	tmxFlag := flag.Bool("tmx", false, "Load the map from a .tmx file instead of .json")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 = time based)")
	langFlag := flag.String("lang", "", "Message language under configs/locales (default from game.json)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logrus.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	root := logger.New(cfg.Settings.Logging.Level, cfg.Settings.Logging.Format)
	log := logger.Component(root, "main")

	if *langFlag != "" {
		cfg.Locale, err = loader.LoadLocale(*langFlag)
		if err != nil {
			log.WithError(err).Fatal("Failed to load locale")
		}
		cfg.Settings.Language = *langFlag
	}

	if *replayFlag != "" {
		if err := runReplayFile(*replayFlag, cfg, loader, root); err != nil {
			log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	mapCfg, err := loadMap(loader, *mapFlag, *tmxFlag)
	if err != nil {
		log.WithError(err).Fatal("Failed to load map")
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene, err := playing.New(cfg, mapCfg, seed, *recordFlag, logger.Component(root, "playing"))
	if err != nil {
		log.WithError(err).Fatal("Failed to create scene")
	}

	display := cfg.Settings.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, logger.Component(root, "game"))
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Robot Workshop")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Error("Game exited with error")
		g.Close()
		os.Exit(1)
	}
}

// loadMap loads a Tiled map by name in the requested format
func loadMap(loader *config.Loader, name string, tmx bool) (*config.MapConfig, error) {
	if tmx {
		return loader.LoadTMX(name)
	}
	return loader.LoadMap(name)
}

func runReplayFile(filename string, cfg *config.GameConfig, loader *config.Loader, root *logrus.Logger) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	// Replays record the map name only; try JSON first, then TMX
	mapCfg, err := loader.LoadMap(data.Map)
	if err != nil {
		var tmxErr error
		if mapCfg, tmxErr = loader.LoadTMX(data.Map); tmxErr != nil {
			return err
		}
	}

	result, err := runReplay(cfg, mapCfg, data, logger.Component(root, "replay"))
	if err != nil {
		return err
	}

	logger.Component(root, "main").WithFields(logrus.Fields{
		"file":    filename,
		"frames":  result.Frames,
		"state":   result.State.String(),
		"playerX": result.PlayerX,
		"playerY": result.PlayerY,
		"health":  result.PlayerHealth,
		"zombies": result.Zombies,
		"parts":   result.PartsCollected,
		"robot":   result.RobotBuilt,
	}).Info("Replay finished")
	return nil
}
