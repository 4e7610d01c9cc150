// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-fort-note/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the note store exposed to the editor layer. Every call
// loads the full collection, applies one change and persists it before
// returning. Implementations are not safe for concurrent use unless wrapped
// with [NewSerializedNoteService].
type NoteService interface {
	// Create adds an unlocked note at the front of the collection.
	Create(ctx context.Context, title, content string) (models.Note, error)

	// Update replaces title and content. An unknown id is a silent no-op.
	// A locked note is refused with ErrNoteLocked.
	Update(ctx context.Context, id, title, content string) error

	// Delete removes every note with id. An unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the collection in storage order.
	List(ctx context.Context) ([]models.Note, error)

	// Get returns a single note or ErrNoteNotFound.
	Get(ctx context.Context, id string) (models.Note, error)

	// Lock encrypts the note content under password. Locking a locked note
	// succeeds without re-encrypting.
	Lock(ctx context.Context, id, password string) error

	// Unlock decrypts the note content and returns the plaintext. Unlocking
	// an unlocked note returns its content unchanged.
	Unlock(ctx context.Context, id, password string) (string, error)

	// LockAll locks every note under one password.
	LockAll(ctx context.Context, password string) (models.BulkResult, error)

	// UnlockAll unlocks every note that opens with password.
	UnlockAll(ctx context.Context, password string) (models.BulkResult, error)

	// Reconcile repairs locked flags that disagree with the content.
	Reconcile(ctx context.Context) (models.BulkResult, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
