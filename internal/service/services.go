// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the note store: CRUD over the persisted note
// collection plus password locking of individual notes.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/store"
)

// Services groups the services used by the HTTP server.
type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires the note store over storage. The note service is
// serialized because the HTTP server calls it from many goroutines.
func NewServices(storage store.KeyValueStorage, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	notes := NewNoteService(store.NewNoteRepository(storage, logger), crypto.NewCodec(), logger)

	return &Services{
		NoteService:    NewSerializedNoteService(notes),
		AppInfoService: appInfo,
	}, nil
}
