// Command seed-boards creates the initial set of boards. Boards have no
// runtime creation API; this tool is the administrative seeding path.
package main

import (
	"flag"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/nanashi-dev/nanashi/internal/config"
	"github.com/nanashi-dev/nanashi/internal/logger"
	"github.com/nanashi-dev/nanashi/internal/storage/pg"
)

type seedFile struct {
	Boards []struct {
		Name        string  `yaml:"name"`
		Description *string `yaml:"description"`
	} `yaml:"boards"`
}

func main() {
	var configFolder, boardsFile string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&boardsFile, "boards", "config/boards.yaml", "path to board seed file")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	raw, err := os.ReadFile(boardsFile)
	if err != nil {
		logger.Log.Error("failed to read seed file", "err", err)
		os.Exit(1)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		logger.Log.Error("failed to parse seed file", "err", err)
		os.Exit(1)
	}
	if len(seed.Boards) == 0 {
		logger.Log.Error("seed file contains no boards", "file", boardsFile)
		os.Exit(1)
	}

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to init storage", "err", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	for _, b := range seed.Boards {
		id, err := storage.CreateBoard(b.Name, b.Description)
		if err != nil {
			logger.Log.Error("failed to create board", "name", b.Name, "err", err)
			os.Exit(1)
		}
		logger.Log.Info("created board", "id", id, "name", b.Name)
	}
}
