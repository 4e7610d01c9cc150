// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteInput carries the editable fields of a note for create and update.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PasswordRequest is the body of every lock/unlock request.
type PasswordRequest struct {
	Password string `json:"password"`
}

// UnlockResponse carries the plaintext returned by a successful unlock.
type UnlockResponse struct {
	Content string `json:"content"`
}

// BulkResult reports the outcome of an operation that walks the whole
// collection. Each note id lands in exactly one of the lists; notes that the
// operation did not consider at all are not listed.
type BulkResult struct {
	// Changed lists notes whose stored state was modified.
	Changed []string `json:"changed"`

	// Skipped lists notes that were inspected and left as they were.
	Skipped []string `json:"skipped"`

	// Failed lists notes the operation could not process (for example a
	// wrong password during a bulk unlock). Their stored state is unchanged.
	Failed []string `json:"failed"`
}
