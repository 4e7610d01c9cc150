// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/migrations"
)

// SQL dialect names, matching both the database/sql driver names and the
// goose dialects.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// ErrorClassificator decides whether a failed SQL operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is an open SQL connection together with its dialect and the error
// classifier of its driver.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the dialect the connection was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}
