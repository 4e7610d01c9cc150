package service

import "errors"

var (
	// ErrNoteNotFound is returned by Get, Lock and Unlock for an unknown id.
	ErrNoteNotFound = errors.New("note not found")

	// ErrEmptyPassword is returned when a lock or unlock is attempted
	// without a password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrNoteLocked is returned by Update for a locked note.
	ErrNoteLocked = errors.New("note is locked")

	// ErrInconsistentState is returned when a note's locked flag disagrees
	// with its content on a lock or unlock path.
	ErrInconsistentState = errors.New("note locked flag disagrees with its content")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
