/* Copyright 2025 Fieldsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fieldsync/fieldsync/pkg/server/log"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// maxOpenConns bounds the connection pool. Requests queue on the pool
	// when it is exhausted instead of opening unbounded connections.
	maxOpenConns = 10
	maxIdleConns = 5
	connMaxLife  = time.Hour
)

// OpenParams are the parameters for opening a database connection
type OpenParams struct {
	// DatabaseURL is a Postgres DSN. When set, it takes precedence over DBPath.
	DatabaseURL string
	// DBPath is a path to a SQLite database file.
	DBPath string
	// LogLevel is the application log level used to derive the gorm log level.
	LogLevel string
}

// getDBLogLevel maps the application log level to a gorm logger level
func getDBLogLevel(level string) logger.LogLevel {
	switch level {
	case log.LevelDebug:
		return logger.Info
	case log.LevelWarn:
		return logger.Warn
	case log.LevelError:
		return logger.Error
	default:
		return logger.Silent
	}
}

// InitSchema migrates database schema to reflect the latest model definition
func InitSchema(db *gorm.DB) {
	if err := db.AutoMigrate(
		&Client{},
		&Product{},
		&Order{},
		&OrderLineItem{},
	); err != nil {
		panic(err)
	}
}

// Open initializes the database connection and configures the connection pool
func Open(p OpenParams) *gorm.DB {
	var dialector gorm.Dialector
	if p.DatabaseURL != "" {
		dialector = postgres.Open(p.DatabaseURL)
	} else {
		// Create directory if it doesn't exist
		dir := filepath.Dir(p.DBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(errors.Wrapf(err, "creating database directory at %s", dir))
		}

		dialector = sqlite.Open(p.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(getDBLogLevel(p.LogLevel)),
	})
	if err != nil {
		panic(errors.Wrap(err, "opening database connection"))
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(errors.Wrap(err, "getting underlying sql.DB"))
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLife)

	return db
}

// StartWALCheckpointing periodically truncates the SQLite WAL file so that it
// does not grow unbounded. It is a no-op for non-SQLite backends.
func StartWALCheckpointing(db *gorm.DB, interval time.Duration) {
	if db.Dialector.Name() != "sqlite" {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
				log.ErrorWrap(err, "checkpointing WAL")
			}
		}
	}()
}

// StartPeriodicVacuum periodically vacuums the SQLite database to reclaim
// space and defragment it. It is a no-op for non-SQLite backends.
func StartPeriodicVacuum(db *gorm.DB, interval time.Duration) {
	if db.Dialector.Name() != "sqlite" {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := db.Exec("VACUUM").Error; err != nil {
				log.ErrorWrap(err, "vacuuming database")
			}
		}
	}()
}
