package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type config struct {
	addr     string
	env      string
	apiURL   string
	logLevel string
	db       dbConfig
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime time.Duration
}

var errMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// loadConfig reads settings from the environment. Only DATABASE_URL is
// required; malformed optional values fall back to their defaults.
func loadConfig() (config, error) {
	cfg := config{
		addr:     getEnv("ADDR", ":8080"),
		env:      getEnv("ENV", "development"),
		apiURL:   getEnv("EXTERNAL_URL", "localhost:8080"),
		logLevel: getEnv("LOG_LEVEL", "info"),
		db: dbConfig{
			addr:        os.Getenv("DATABASE_URL"),
			maxConns:    10,
			maxIdleTime: 15 * time.Minute,
		},
	}
	if cfg.db.addr == "" {
		return cfg, errMissingDatabaseURL
	}

	if val, exists := os.LookupEnv("DB_MAX_CONNS"); exists {
		if parsedVal, err := strconv.ParseInt(val, 10, 32); err == nil && parsedVal > 0 {
			cfg.db.maxConns = int32(parsedVal)
		} else {
			fmt.Println("Invalid DB_MAX_CONNS, defaulting to", cfg.db.maxConns)
		}
	}

	if val, exists := os.LookupEnv("DB_MAX_IDLE_TIME"); exists {
		if parsedVal, err := time.ParseDuration(val); err == nil {
			cfg.db.maxIdleTime = parsedVal
		} else {
			fmt.Println("Invalid DB_MAX_IDLE_TIME, defaulting to", cfg.db.maxIdleTime)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
