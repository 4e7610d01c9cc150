// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// fort-note HTTP handlers and the HTTP adapter.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The adapter matches on them to turn a response back into
// the matching sentinel error, so the wording here is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoteNotFound is returned for an id that is not in the collection.
	MsgNoteNotFound = "note not found"

	// MsgNoteLocked is returned when an update targets a locked note.
	MsgNoteLocked = "note is locked"

	// MsgEmptyPassword is returned when a lock or unlock request carries no
	// password.
	MsgEmptyPassword = "password must not be empty"

	// MsgWrongPassword is returned when an envelope fails authentication.
	// A wrong password and a tampered envelope are reported identically.
	MsgWrongPassword = "wrong password or corrupted note"

	// MsgMalformedEnvelope is returned when a locked note's content cannot
	// be decoded as an envelope.
	MsgMalformedEnvelope = "malformed encrypted content"

	// MsgInconsistentState is returned when a note's locked flag disagrees
	// with its content.
	MsgInconsistentState = "note locked flag disagrees with its content"

	// MsgStorageUnavailable is returned when the storage backend fails.
	MsgStorageUnavailable = "storage unavailable"
)
