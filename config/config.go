package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string

	// Snowflake node identity. Every instance of the API that shares a
	// database must be configured with a distinct (region, worker) pair.
	RegionID int64
	WorkerID int64
}

func LoadConfig() Config {
	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		RegionID:   envInt64("SNOWFLAKE_REGION_ID", 0),
		WorkerID:   envInt64("SNOWFLAKE_WORKER_ID", 0),
	}
}

// envInt64 returns def when the variable is unset. A value that does not
// parse comes back as -1 so the snowflake constructor rejects it at startup
// instead of silently running with a default node id.
func envInt64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1
	}
	return n
}
