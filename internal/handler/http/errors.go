// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is logged when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmptyNoteID is logged when the {id} URL parameter is blank.
	ErrEmptyNoteID = errors.New("empty note id")
)
