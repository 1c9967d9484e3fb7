package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipedex/backend/config"
)

// DB wraps the gorm connection used by the services
type DB struct {
	*gorm.DB
}

// New connects to Postgres and returns the gorm handle. The database is
// probed with a plain database/sql connection first so that a slow-starting
// container fails fast with a clear error instead of a gorm dial timeout.
func New(cfg *config.Config) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	// Log connection target (without password)
	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

	if err := waitForDatabase(dsn, 10, time.Second); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Printf("Successfully connected to database")
	return &DB{db}, nil
}

// waitForDatabase pings the database until it answers or attempts run out
func waitForDatabase(dsn string, attempts int, delay time.Duration) error {
	probe, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("error opening database probe: %w", err)
	}
	defer probe.Close()

	for i := 1; i <= attempts; i++ {
		if err = probe.Ping(); err == nil {
			return nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", i, attempts, err)
		time.Sleep(delay)
	}
	return fmt.Errorf("error connecting to the database: %w", err)
}

// HealthCheck checks if the database is accessible
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
