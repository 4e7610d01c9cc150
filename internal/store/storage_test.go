// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/logger"
)

// backendFactories opens every backend that runs without external services.
func backendFactories(t *testing.T) map[string]func(t *testing.T) KeyValueStorage {
	t.Helper()

	open := func(dsn string) func(t *testing.T) KeyValueStorage {
		return func(t *testing.T) KeyValueStorage {
			s, err := NewStorage(context.Background(), config.Storage{DSN: dsn}, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		}
	}

	return map[string]func(t *testing.T) KeyValueStorage{
		"memory": open("memory"),
		"file": func(t *testing.T) KeyValueStorage {
			return open("file://" + filepath.Join(t.TempDir(), "prefs.json"))(t)
		},
		// :memory: is per connection, a temp file keeps one database
		"sqlite": func(t *testing.T) KeyValueStorage {
			return open(filepath.Join(t.TempDir(), "prefs.db"))(t)
		},
	}
}

func TestKeyValueStorage_Contract(t *testing.T) {
	for name, factory := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := factory(t)

			_, ok, err := s.GetString(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok, "unknown key must report ok=false")

			require.NoError(t, s.SetString(ctx, "k", "first"))
			v, ok, err := s.GetString(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "first", v)

			require.NoError(t, s.SetString(ctx, "k", "second"))
			v, _, err = s.GetString(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "second", v)

			require.NoError(t, s.SetString(ctx, "empty", ""))
			v, ok, err = s.GetString(ctx, "empty")
			require.NoError(t, err)
			assert.True(t, ok, "an empty value is still a value")
			assert.Empty(t, v)

			big := strings.Repeat("x", 1<<16)
			require.NoError(t, s.SetString(ctx, "big", big))
			v, _, err = s.GetString(ctx, "big")
			require.NoError(t, err)
			assert.Len(t, v, 1<<16)
		})
	}
}

func TestKeyValueStorage_SurvivesReopen(t *testing.T) {
	tests := []struct {
		name string
		dsn  func(dir string) string
	}{
		{name: "file url", dsn: func(dir string) string { return "file://" + filepath.Join(dir, "p.json") }},
		{name: "json path", dsn: func(dir string) string { return filepath.Join(dir, "p.json") }},
		{name: "sqlite", dsn: func(dir string) string { return filepath.Join(dir, "nested", "p.db") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.Storage{DSN: tt.dsn(t.TempDir())}

			s, err := NewStorage(ctx, cfg, logger.Nop())
			require.NoError(t, err)
			require.NoError(t, s.SetString(ctx, "FortnotePrefs.notes", "[]"))
			require.NoError(t, s.Close())

			s, err = NewStorage(ctx, cfg, logger.Nop())
			require.NoError(t, err)
			defer s.Close()

			v, ok, err := s.GetString(ctx, "FortnotePrefs.notes")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[]", v)
		})
	}
}

func TestBackendFor(t *testing.T) {
	tests := []struct {
		dsn         string
		wantKind    string
		wantAddress string
	}{
		{dsn: "", wantKind: BackendMemory},
		{dsn: "memory", wantKind: BackendMemory},
		{dsn: "file:///tmp/notes.json", wantKind: BackendFile, wantAddress: "/tmp/notes.json"},
		{dsn: "file://notes.db", wantKind: BackendFile, wantAddress: "notes.db"},
		{dsn: "notes.JSON", wantKind: BackendFile, wantAddress: "notes.JSON"},
		{dsn: "postgres://u:p@localhost:5432/notes", wantKind: BackendPostgres, wantAddress: "postgres://u:p@localhost:5432/notes"},
		{dsn: "postgresql://localhost/notes", wantKind: BackendPostgres, wantAddress: "postgresql://localhost/notes"},
		{dsn: "fortnote.db", wantKind: BackendSQLite, wantAddress: "fortnote.db"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			kind, address := BackendFor(tt.dsn)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantAddress, address)
		})
	}
}
