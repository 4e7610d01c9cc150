// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the note collection. A [KeyValueStorage] backend
// (memory, JSON file, SQLite or PostgreSQL) holds string values by key and
// a [NoteRepository] encodes the whole collection under one fixed key.
package store

import (
	"context"

	"github.com/MKhiriev/go-fort-note/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a synchronous string store. A successful SetString is
// durable before it returns.
type KeyValueStorage interface {
	// GetString returns the value stored under key. ok is false when the key
	// has never been written.
	GetString(ctx context.Context, key string) (value string, ok bool, err error)

	// SetString stores value under key, replacing any previous value.
	SetString(ctx context.Context, key, value string) error

	// Close releases the backend.
	Close() error
}

// NoteRepository loads and saves the full note collection.
type NoteRepository interface {
	// Load returns the persisted collection in storage order. An absent
	// collection is empty. A collection that cannot be decoded is returned
	// as empty together with ErrCorruptCollection.
	Load(ctx context.Context) ([]models.Note, error)

	// Save replaces the persisted collection.
	Save(ctx context.Context, notes []models.Note) error
}
