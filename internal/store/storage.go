// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/logger"
)

// Backend kinds selected by [BackendFor].
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// BackendFor picks the backend kind for dsn and returns the address to pass
// to it:
//   - "" or "memory"                          memory
//   - "file://<path>" or a path ending in .json  file
//   - "postgres://..." or "postgresql://..."  postgres, dsn unchanged
//   - anything else                           sqlite file path
func BackendFor(dsn string) (kind, address string) {
	switch {
	case dsn == "" || dsn == BackendMemory:
		return BackendMemory, ""
	case strings.HasPrefix(dsn, "file://"):
		return BackendFile, strings.TrimPrefix(dsn, "file://")
	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		return BackendFile, dsn
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn
	default:
		return BackendSQLite, dsn
	}
}

// NewStorage opens the [KeyValueStorage] addressed by cfg.DSN. SQL backends
// are migrated before they are returned.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (KeyValueStorage, error) {
	kind, address := BackendFor(cfg.DSN)
	log.Debug().Str("func", "NewStorage").Str("backend", kind).Msg("opening storage")

	switch kind {
	case BackendMemory:
		return NewMemoryStorage(), nil
	case BackendFile:
		return NewFileStorage(address, log)
	}

	var (
		db  *DB
		err error
	)
	if kind == BackendPostgres {
		db, err = NewConnectPostgres(ctx, address, log)
	} else {
		db, err = NewConnectSQLite(ctx, address, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorage").Str("backend", kind).Msg("failed to migrate database")
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return NewSQLStorage(db, log), nil
}
