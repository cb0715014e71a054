// Package db provides the database client lifecycle: configuration from the
// environment, connection with retry, migration and shutdown. The client is
// constructed explicitly and passed to the repositories by dependency
// injection; there is no package-level singleton.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Config holds the database settings resolved from the environment.
type Config struct {
	// Env is the deployment environment, "dev" or "qc". It selects which
	// DATABASE_URL_* variable supplies the DSN.
	Env string

	// URL is the Postgres DSN.
	URL string

	// RunMigrations enables AutoMigrate on startup.
	RunMigrations bool
}

// LoadConfig reads the configuration from the environment. APP_ENV defaults
// to "dev".
func LoadConfig() (Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	url, err := ResolveDSN(env, os.Getenv)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Env:           env,
		URL:           url,
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}, nil
}

// ResolveDSN picks the DSN variable for the given environment. The getenv
// function is injectable for testing.
func ResolveDSN(env string, getenv func(string) string) (string, error) {
	var key string
	switch env {
	case "dev":
		key = "DATABASE_URL_DEV"
	case "qc":
		key = "DATABASE_URL_QC"
	default:
		return "", fmt.Errorf("unknown APP_ENV %q", env)
	}
	dsn := getenv(key)
	if dsn == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return dsn, nil
}

// OpenFunc opens a gorm connection for a DSN. Injectable for testing.
type OpenFunc func(dsn string) (*gorm.DB, error)

func openPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// ConnectWithRetry keeps reopening the connection until it succeeds or the
// timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open OpenFunc) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", timeout, err)
		}
		log.Printf("database connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// Open connects to Postgres and, when configured, runs the migrations.
func Open(cfg Config) (*gorm.DB, error) {
	db, err := ConnectWithRetry(cfg.URL, connectTimeout, openPostgres)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}

// Migrate creates or updates the users and posts tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.User{}, &entity.Post{})
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
