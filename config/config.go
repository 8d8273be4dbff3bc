package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	GinMode           string
	LogLevel          string
	LogFile           string
	CORSAllowedOrigin string
	JWTSecret         string
	DB                DatabaseConfig
}

type DatabaseConfig struct {
	Driver          string
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func Load() *Config {
	_ = godotenv.Load()

	driver := getEnv("DB_DRIVER", "postgres")
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", ""),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		DB: DatabaseConfig{
			Driver:          driver,
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", defaultPort(driver)),
			User:            getEnv("DB_USER", "places"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "places"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			Path:            getEnv("DB_PATH", "places.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
	}
}

// DSN builds the driver specific connection string. DATABASE_URL, when set,
// is used as is for postgres and mysql.
func (c DatabaseConfig) DSN() (string, error) {
	switch c.Driver {
	case "postgres":
		if c.URL != "" {
			return c.URL, nil
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode), nil
	case "mysql":
		if c.URL != "" {
			return c.URL, nil
		}
		// clientFoundRows makes UPDATE report matched rather than changed rows
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			c.User, c.Password, c.Host, c.Port, c.Name), nil
	case "sqlite":
		return c.Path, nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// Params describes the connection with the password redacted.
func (c DatabaseConfig) Params() map[string]string {
	if c.Driver == "sqlite" {
		return map[string]string{"driver": c.Driver, "path": c.Path}
	}
	params := map[string]string{
		"driver": c.Driver,
		"host":   c.Host,
		"port":   c.Port,
		"user":   c.User,
		"dbname": c.Name,
	}
	if c.Password != "" {
		params["password"] = "******"
	}
	if c.URL != "" {
		params["url"] = "set (DATABASE_URL overrides host/port/user/dbname)"
	}
	return params
}

func defaultPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return val
}
