// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies of the notes API before they
// reach the note service: titles and contents must be valid UTF-8 within
// size limits, and password bodies must carry a non-empty, bounded password.
//
// Failures are the sentinels in errors.go, sometimes wrapped with detail;
// the HTTP layer matches them with errors.Is and answers 400.
package validators

import "context"

// Validator checks a decoded request body. Passing field names (FieldTitle,
// FieldContent, FieldPassword) limits the check to those fields; an
// unsupported body type yields ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, body any, fields ...string) error
}
