package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the default generation and server settings.
type Config struct {
	Height       int    // Grid height, in entities (odd)
	Width        int    // Grid width, in entities (odd)
	GapSize      int    // Pixel size of a cell when rendering
	RandomSeed   int64  // Seed for generation; not positive means time-based
	MaxDimension int    // Largest height or width the server will generate
	MaxPixels    int64  // Largest PNG area, in pixels, the server will produce
	ListenAddr   string // Address for the HTTP server
	GinMode      string // Mode for the Gin framework (e.g., release, debug, test)
}

// Load reads an optional .env file from the working directory, then fills
// the Config from environment variables, falling back to defaults for any
// that are unset or malformed.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return fromEnv()
}

func fromEnv() Config {
	return Config{
		Height:       getEnvAsIntWithDefault("MAZE_HEIGHT", 21),
		Width:        getEnvAsIntWithDefault("MAZE_WIDTH", 21),
		GapSize:      getEnvAsIntWithDefault("MAZE_GAP_SIZE", 10),
		RandomSeed:   int64(getEnvAsIntWithDefault("MAZE_RANDOM_SEED", -1)),
		MaxDimension: getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 401),
		MaxPixels:    int64(getEnvAsIntWithDefault("MAZE_MAX_PIXELS", 4096*4096)),
		ListenAddr:   getEnvWithDefault("MAZE_LISTEN_ADDR", ":8080"),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, returning the default if it is unset or not an integer.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
