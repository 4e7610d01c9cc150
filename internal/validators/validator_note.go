// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-fort-note/models"
)

// Field name constants accepted by [NoteValidator.Validate] to restrict
// validation to a subset of fields.
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldPassword = "password"
)

// Limits enforced on request bodies.
const (
	MaxTitleLength  = 512     // runes
	MaxContentSize  = 4 << 20 // bytes
	MaxPasswordSize = 1024    // bytes
)

// NoteValidator checks note inputs and password requests before they reach
// the note service.
type NoteValidator struct{}

// NewNoteValidator returns a [Validator] for [models.NoteInput] and
// [models.PasswordRequest].
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate implements [Validator]. With no fields every field of obj is
// checked.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput:
		return v.validateNoteInput(value, fields...)
	case *models.NoteInput:
		return v.validateNoteInput(*value, fields...)

	case models.PasswordRequest:
		return v.validatePasswordRequest(value, fields...)
	case *models.PasswordRequest:
		return v.validatePasswordRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteInput(in models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if !utf8.ValidString(in.Title) {
				return fmt.Errorf("%w: not valid UTF-8", ErrInvalidTitle)
			}
			if n := utf8.RuneCountInString(in.Title); n > MaxTitleLength {
				return fmt.Errorf("%w: %d characters, at most %d allowed", ErrInvalidTitle, n, MaxTitleLength)
			}
		case FieldContent:
			if !utf8.ValidString(in.Content) {
				return fmt.Errorf("%w: not valid UTF-8", ErrInvalidContent)
			}
			if len(in.Content) > MaxContentSize {
				return fmt.Errorf("%w: %d bytes, at most %d allowed", ErrInvalidContent, len(in.Content), MaxContentSize)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *NoteValidator) validatePasswordRequest(req models.PasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) > MaxPasswordSize {
				return ErrPasswordTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
