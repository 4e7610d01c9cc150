package cli

import "errors"

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNothingToUpdate  = errors.New("nothing to update: pass --title and/or --content")
	ErrNoteIsLocked     = errors.New("note is locked, unlock it first")
)
