package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds process-wide settings. It is read once at startup and
// passed down explicitly; nothing else reads the environment.
type AppConfig struct {
	JWTSecret          string
	JWTTTL             time.Duration
	IssueLoginToken    bool
	ServerPort         string
	GinMode            string
	CORSAllowedOrigins []string

	InitialAdminName     string
	InitialAdminEmail    string
	InitialAdminPassword string

	DB *DBConfig
}

// Load reads the .env file (if any) and the environment into an AppConfig
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             time.Duration(getEnvAsInt("JWT_TTL_MINUTES", 60)) * time.Minute,
		IssueLoginToken:    getEnvAsBool("AUTH_ISSUE_LOGIN_TOKEN", true),
		ServerPort:         getEnv("SERVER_PORT", "5000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		InitialAdminName:     getEnv("INITIAL_ADMIN_NAME", "Administrator"),
		InitialAdminEmail:    os.Getenv("INITIAL_ADMIN_EMAIL"),
		InitialAdminPassword: os.Getenv("INITIAL_ADMIN_PASSWORD"),

		DB: dbCfg,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the server cannot run without
func (c *AppConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET not set in environment")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL_MINUTES must be positive")
	}
	if (c.InitialAdminEmail == "") != (c.InitialAdminPassword == "") {
		return fmt.Errorf("INITIAL_ADMIN_EMAIL and INITIAL_ADMIN_PASSWORD must be set together")
	}
	return nil
}

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
		log.Printf("Invalid %s, defaulting to %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s, defaulting to %t: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
