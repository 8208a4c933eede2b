package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// worldPath picks the world file from the command arguments, falling back
// to ROOMCRAWL_WORLD. An empty result means the bundled world.
func worldPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return game.ConfigFromEnv().WorldPath
}

// loadWorld loads the world at path (or the bundled world when path is
// empty) and logs its diagnostics. It returns a display name for the source.
func loadWorld(ctx context.Context, logger *log.Logger, path string) (world.Result, string, error) {
	start := time.Now()

	var (
		result world.Result
		name   string
		err    error
	)
	if path == "" {
		name = "bundled:" + gamedata.DefaultWorldName
		logger.Debug("Loading bundled world", "file", gamedata.DefaultWorldName)
		result, err = world.LoadDefault(ctx)
	} else {
		name = path
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		logger.Debug("Loading world", "file", abs)
		result, err = world.LoadFile(ctx, os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	}
	if err != nil {
		logger.Error("Failed to load world", "err", err)
		return result, name, err
	}

	logDiagnostics(logger, result.Diagnostics)
	logger.Debugf("Loaded %d rooms from %s (%s)", len(result.Rooms), name, time.Since(start).Round(time.Millisecond))
	return result, name, nil
}
