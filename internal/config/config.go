package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the demo harness
type Config struct {
	MCP     MCPConfig
	Display DisplayConfig
	Logging LoggingConfig
}

// MCPConfig holds the simulated MCP server coordinates. The values are
// passed through to the tool boundary unchanged; they never influence which
// fixture a query resolves to.
type MCPConfig struct {
	ServerName string
	ToolName   string
}

// DisplayConfig holds result rendering configuration
type DisplayConfig struct {
	ExcerptLength int // description prefix shown before the ellipsis marker
	TableMaxWidth int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		MCP: MCPConfig{
			ServerName: getEnv("MCP_SERVER_NAME", "oceanbase"),
			ToolName:   getEnv("MCP_TOOL_NAME", "execute_sql"),
		},
		Display: DisplayConfig{
			ExcerptLength: getEnvAsInt("DISPLAY_EXCERPT_LENGTH", 100),
			TableMaxWidth: getEnvAsInt("DISPLAY_TABLE_MAX_WIDTH", 120),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
