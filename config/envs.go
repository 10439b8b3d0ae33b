package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // Address (host:port) of the Redis server
	RedisPassword   string // Password for the Redis server
	LeaderboardSize int    // Number of mazes kept on the leaderboard
	LeaderboardTTL  int    // Leaderboard expiration in seconds
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	TokenTTL        int    // Maze token lifetime in hours
	BoardWidth      int    // Default maze width
	BoardHeight     int    // Default maze height
	BoardStartX     int    // Default start column
	BoardStartY     int    // Default start row
	BoardGoalX      int    // Default goal column
	BoardGoalY      int    // Default goal row
	BoardSeed       *int64 // Fixed generation seed; nil means a new seed per maze
}

// Envs holds the application's configuration loaded from environment variables.
// It is populated by Init.
var Envs Config

// Init loads the configuration into Envs.
func Init() {
	Envs = initConfig()
}

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          mustGetEnv("HOST_IP"),
		RESTPort:        mustGetEnvAsInt("REST_PORT"),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		DBHost:          mustGetEnv("DB_HOST"),
		DBPort:          mustGetEnvAsInt("DB_PORT"),
		DBUser:          mustGetEnv("DB_USER"),
		DBPassword:      mustGetEnv("DB_PASS"),
		DBName:          mustGetEnv("DB_NAME"),
		RedisAddr:       mustGetEnv("REDIS_ADDR"),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		LeaderboardSize: getEnvAsIntWithDefault("LEADERBOARD_SIZE", 100),
		LeaderboardTTL:  getEnvAsIntWithDefault("LEADERBOARD_TTL", 24*60*60),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       mustGetEnv("JWT_ISSUER"),
		TokenTTL:        getEnvAsIntWithDefault("TOKEN_TTL", 24),
		BoardWidth:      getEnvAsIntWithDefault("BOARD_WIDTH", 51),
		BoardHeight:     getEnvAsIntWithDefault("BOARD_HEIGHT", 51),
		BoardStartX:     getEnvAsIntWithDefault("BOARD_START_X", 0),
		BoardStartY:     getEnvAsIntWithDefault("BOARD_START_Y", 0),
		BoardGoalX:      getEnvAsIntWithDefault("BOARD_GOAL_X", 50),
		BoardGoalY:      getEnvAsIntWithDefault("BOARD_GOAL_Y", 50),
		BoardSeed:       getOptionalEnvAsInt64("BOARD_SEED"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
// A value that is set but cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getOptionalEnvAsInt64 retrieves an int64 environment variable, or nil if not set.
func getOptionalEnvAsInt64(key string) *int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return &value
}
