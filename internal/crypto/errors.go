// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Decryption outcomes returned by [NoteCipher.Decrypt]. Callers match them
// with [errors.Is].
var (
	// ErrDecode is returned when an envelope is not valid base64 or is too
	// short to contain a salt and a nonce.
	ErrDecode = errors.New("malformed envelope")

	// ErrAuthentication is returned when the GCM tag does not verify: the
	// password is wrong or the envelope was modified.
	ErrAuthentication = errors.New("envelope authentication failed")
)
