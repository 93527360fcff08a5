package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Data   DataConfig
	Report ReportConfig
	Seeder SeederConfig
	Log    LogConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// SourceType selects where the reference tables are read from
type SourceType string

const (
	SourceFile     SourceType = "file"
	SourceHTTP     SourceType = "http"
	SourceDatabase SourceType = "database"
)

// DataConfig holds settings for loading the reference tables
type DataConfig struct {
	Source      SourceType
	Dir         string
	BaseURL     string
	LoadTimeout time.Duration
}

// ReportConfig holds settings for check reports
type ReportConfig struct {
	Lang             string
	SimilarTolerance float64
}

// SeederConfig holds settings for data import
type SeederConfig struct {
	BatchSize int
}

// LogConfig holds logger settings
type LogConfig struct {
	Development bool
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "carryon" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	source := SourceType(getEnv("DATA_SOURCE", string(SourceFile)))
	if source != SourceFile && source != SourceHTTP && source != SourceDatabase {
		source = SourceFile
	}

	lang := getEnv("REPORT_LANG", "ja")
	if lang != "ja" && lang != "en" {
		lang = "ja"
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "carryon"),
			Password: getEnv("DB_PASSWORD", "carryon_password"),
			Name:     getEnv("DB_NAME", "carryon"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Data: DataConfig{
			Source:      source,
			Dir:         getEnv("DATA_DIR", "data"),
			BaseURL:     strings.TrimSuffix(getEnv("DATA_BASE_URL", ""), "/"),
			LoadTimeout: getEnvAsDuration("LOAD_TIMEOUT", 10*time.Second),
		},
		Report: ReportConfig{
			Lang:             lang,
			SimilarTolerance: getEnvAsFloat("SIMILAR_TOLERANCE_CM", 2),
		},
		Seeder: SeederConfig{
			BatchSize: getEnvAsInt("SEEDER_BATCH_SIZE", 500),
		},
		Log: LogConfig{
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	if config.Data.Source == SourceHTTP && config.Data.BaseURL == "" {
		return nil, fmt.Errorf("DATA_BASE_URL is required when DATA_SOURCE is %q", SourceHTTP)
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
