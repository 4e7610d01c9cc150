// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running fortnote server.
//
// [NewHTTPNoteAdapter] implements [service.NoteService] over the JSON API so
// that the CLI drives a remote note store exactly like a local one. Response
// statuses and messages are mapped back to the sentinels of the service,
// crypto and store packages by mapHTTPError, so callers keep using
// [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fort-note/internal/service"
)

// NoteAdapter is a remote [service.NoteService] that can also report the
// server version.
type NoteAdapter interface {
	service.NoteService

	// ServerVersion returns the version string of the remote server.
	ServerVersion(ctx context.Context) (string, error)
}
