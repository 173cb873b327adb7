// Package db opens the GORM database used to persist observations.
package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"econ_backend/internal/feature/rates/adapters"
)

// DefaultSQLitePath is where the local database lives when DB_PATH is unset.
const DefaultSQLitePath = "data/econ.db"

// OpenDB opens the observation database. The driver is selected with
// DB_DRIVER: "postgres" connects using the DB_* variables, anything else
// uses a local SQLite file at DB_PATH. Postgres connections are retried
// for up to 60 seconds to ride out container startup ordering.
func OpenDB() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if os.Getenv("DB_DRIVER") == "postgres" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = DefaultSQLitePath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatalf("failed to create db directory: %v", err)
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite db: %v", err)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(&adapters.ObservationModel{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
