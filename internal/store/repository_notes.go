// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/models"
)

// Location of the note collection inside the key-value storage.
const (
	Namespace = "FortnotePrefs"
	NotesKey  = "notes"
)

// notesStorageKey is the fully qualified key of the collection.
const notesStorageKey = Namespace + "." + NotesKey

// noteRepository encodes the collection as a JSON array of note records.
type noteRepository struct {
	storage KeyValueStorage
	logger  *logger.Logger
}

// NewNoteRepository returns a [NoteRepository] over storage.
func NewNoteRepository(storage KeyValueStorage, log *logger.Logger) NoteRepository {
	return &noteRepository{
		storage: storage,
		logger:  log,
	}
}

// Load implements [NoteRepository].
func (r *noteRepository) Load(ctx context.Context) ([]models.Note, error) {
	blob, ok, err := r.storage.GetString(ctx, notesStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", wrapPersistence(err))
	}
	if !ok || blob == "" {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err = json.Unmarshal([]byte(blob), &notes); err != nil {
		r.logger.Debug().Err(err).Str("func", "noteRepository.Load").Int("blob_size", len(blob)).Msg("stored collection does not decode")
		return []models.Note{}, fmt.Errorf("%w: %w", ErrCorruptCollection, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// Save implements [NoteRepository].
func (r *noteRepository) Save(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	blob, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	if err = r.storage.SetString(ctx, notesStorageKey, string(blob)); err != nil {
		return fmt.Errorf("save notes: %w", wrapPersistence(err))
	}

	return nil
}
