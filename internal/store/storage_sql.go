// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fort-note/internal/logger"
)

// maxSQLAttempts bounds how often a retryable write is attempted.
const maxSQLAttempts = 3

// sqlStorage is the [KeyValueStorage] backed by the preferences table.
type sqlStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLStorage returns a [KeyValueStorage] over db. The preferences table
// must exist; call db.Migrate first.
func NewSQLStorage(db *DB, log *logger.Logger) KeyValueStorage {
	return &sqlStorage{
		DB:     db,
		logger: log,
	}
}

// GetString implements [KeyValueStorage].
func (s *sqlStorage) GetString(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildGetValueQuery(s.dialect, key)
	if err != nil {
		log.Err(err).Str("func", "sqlStorage.GetString").Msg("failed to create query")
		return "", false, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).
			Str("func", "sqlStorage.GetString").
			Str("key", key).
			Str("sqlstate", postgresError(err)).
			Stringer("classification", s.classify(err)).
			Msg("failed to read preference")
		return "", false, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrScanningRow, err)
	}

	return value, true, nil
}

// SetString implements [KeyValueStorage]. Retryable failures are attempted
// again up to maxSQLAttempts times.
func (s *sqlStorage) SetString(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildUpsertValueQuery(s.dialect, key, value)
	if err != nil {
		log.Err(err).Str("func", "sqlStorage.SetString").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = s.DB.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		class := s.classify(err)
		log.Err(err).
			Str("func", "sqlStorage.SetString").
			Str("key", key).
			Int("attempt", attempt).
			Str("sqlstate", postgresError(err)).
			Stringer("classification", class).
			Msg("failed to write preference")

		if class != Retryable || attempt >= maxSQLAttempts || ctx.Err() != nil {
			return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingStatement, err)
		}
	}
}

// Close implements [KeyValueStorage].
func (s *sqlStorage) Close() error {
	return s.DB.Close()
}

func (s *sqlStorage) classify(err error) ErrorClassification {
	if s.errorClassificator == nil {
		return NonRetryable
	}
	return s.errorClassificator.Classify(err)
}
