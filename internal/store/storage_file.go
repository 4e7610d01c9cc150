// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-fort-note/internal/logger"
)

// fileStorage keeps all values in a single JSON object file. Every write
// rewrites the file through a temporary sibling that is synced and renamed
// over the original, so a crash leaves either the old or the new file.
//
// Another process sharing the file (a server and a local CLI, say) replaces
// it the same way. Each call compares the file with the one last seen and
// rereads it when it changed.
type fileStorage struct {
	path   string
	logger *logger.Logger

	mu     sync.Mutex
	values map[string]string
	// seen is the file as of the last read or write; nil when it did not exist.
	seen os.FileInfo
}

// NewFileStorage opens the JSON file at path. A missing file is an empty
// storage and is created on the first write.
func NewFileStorage(path string, log *logger.Logger) (KeyValueStorage, error) {
	s := &fileStorage{
		path:   path,
		logger: log,
		values: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) load() error {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values, s.seen = make(map[string]string), nil
			return nil
		}
		return fmt.Errorf("%w: stat storage file: %w", ErrPersistence, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: read storage file: %w", ErrPersistence, err)
	}

	values := make(map[string]string)
	if len(data) > 0 {
		if err = json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("%w: decode storage file: %w", ErrPersistence, err)
		}
		if values == nil {
			values = make(map[string]string)
		}
	}

	s.values, s.seen = values, info
	return nil
}

// refresh rereads the file if it was replaced or removed since it was last
// seen.
func (s *fileStorage) refresh(ctx context.Context) error {
	info, err := os.Stat(s.path)
	switch {
	case os.IsNotExist(err):
		if s.seen == nil {
			return nil
		}
	case err != nil:
		return fmt.Errorf("%w: stat storage file: %w", ErrPersistence, err)
	case s.seen != nil && os.SameFile(info, s.seen) &&
		info.ModTime().Equal(s.seen.ModTime()) && info.Size() == s.seen.Size():
		return nil
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("func", "fileStorage.refresh").
		Str("path", s.path).
		Msg("storage file changed on disk, reloading")
	return s.load()
}

func (s *fileStorage) GetString(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return "", false, err
	}

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fileStorage) SetString(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return err
	}

	prev, existed := s.values[key]
	s.values[key] = value

	if err := s.persist(); err != nil {
		// keep memory in line with the file
		if existed {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}

		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "fileStorage.SetString").
			Str("path", s.path).
			Msg("failed to persist storage file")
		return err
	}

	return nil
}

func (s *fileStorage) Close() error {
	return nil
}

func (s *fileStorage) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: create storage dir: %w", ErrPersistence, err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode storage: %w", ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write temp file: %w", ErrPersistence, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync temp file: %w", ErrPersistence, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrPersistence, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("%w: chmod temp file: %w", ErrPersistence, err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: replace storage file: %w", ErrPersistence, err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("%w: stat storage file: %w", ErrPersistence, err)
	}
	s.seen = info

	return nil
}
