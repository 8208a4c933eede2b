package game

import "os"

// EnvWorld names the environment variable holding the default world file.
const EnvWorld = "ROOMCRAWL_WORLD"

// Config holds game configuration options.
type Config struct {
	// WorldPath is the world file to load. Empty means the bundled world.
	WorldPath string
}

// ConfigFromEnv reads the configuration from the environment.
func ConfigFromEnv() Config {
	return Config{WorldPath: os.Getenv(EnvWorld)}
}
