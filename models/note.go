// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Note is a single user-visible note as it is persisted in the collection
// blob. The JSON field names are part of the storage format and must not
// change: older records written by previous versions of the application are
// decoded with the same tags.
//
// Content holds plaintext markup while Locked is false and a base64 AEAD
// envelope while Locked is true. Title is never encrypted.
type Note struct {
	// ID is the immutable identifier assigned at creation.
	ID string `json:"id"`

	// Title is the display title, always stored in plaintext.
	Title string `json:"title"`

	// Content is either plaintext markup or a base64 envelope, see Locked.
	Content string `json:"content"`

	// ModifiedAt is the last modification time in epoch milliseconds.
	// It is stored under the historical "timestamp" key.
	ModifiedAt int64 `json:"timestamp"`

	// CreatedAt is the creation time in epoch milliseconds. Records that
	// predate this field get ModifiedAt instead.
	CreatedAt int64 `json:"creationTimestamp"`

	// Locked reports whether Content currently holds ciphertext.
	Locked bool `json:"locked"`

	// PlaintextLength is the length of the last known plaintext rendering
	// of Content. Editors use it to draw a same-length placeholder while the
	// note is locked.
	PlaintextLength int `json:"plaintextLength"`
}

// noteRecord mirrors Note with optional fields as pointers so that missing
// keys can be told apart from zero values while decoding.
type noteRecord struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	Timestamp       int64  `json:"timestamp"`
	CreatedAt       *int64 `json:"creationTimestamp,omitempty"`
	Locked          *bool  `json:"locked,omitempty"`
	PlaintextLength *int   `json:"plaintextLength,omitempty"`
}

// UnmarshalJSON decodes a persisted record, applying the defaults for
// fields that older records lack: creationTimestamp falls back to
// timestamp, locked to false and plaintextLength to 0.
func (n *Note) UnmarshalJSON(b []byte) error {
	var rec noteRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}

	*n = Note{
		ID:         rec.ID,
		Title:      rec.Title,
		Content:    rec.Content,
		ModifiedAt: rec.Timestamp,
		CreatedAt:  rec.Timestamp,
	}
	if rec.CreatedAt != nil {
		n.CreatedAt = *rec.CreatedAt
	}
	if rec.Locked != nil {
		n.Locked = *rec.Locked
	}
	if rec.PlaintextLength != nil {
		n.PlaintextLength = *rec.PlaintextLength
	}

	return nil
}

// Created returns CreatedAt as a [time.Time].
func (n Note) Created() time.Time {
	return time.UnixMilli(n.CreatedAt)
}

// Modified returns ModifiedAt as a [time.Time].
func (n Note) Modified() time.Time {
	return time.UnixMilli(n.ModifiedAt)
}
