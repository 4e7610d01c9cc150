// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password-based content protection used for note
// bodies. It knows nothing about notes, storage or transport: it turns a
// password into a key and a plaintext into a self-contained envelope.
//
// Envelope layout before base64 encoding:
//
//	salt (16) ‖ nonce (12) ‖ ciphertext ‖ tag (16)
//
//	Key      = PBKDF2-HMAC-SHA256(password, salt, 65536 iterations, 32 bytes)
//	Envelope = base64(salt ‖ nonce ‖ AES-256-GCM(Key, nonce, plaintext))
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/note_cipher_mock.go -package=mock

// NoteCipher encrypts and decrypts note bodies with a user password.
// Every Encrypt call draws a fresh salt and nonce, so encrypting the same
// plaintext twice with the same password yields two different envelopes.
type NoteCipher interface {
	// Encrypt seals plaintext under a key derived from password and returns
	// the base64 envelope. It fails only if the random source or the cipher
	// construction fails; any password is accepted.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt opens an envelope produced by Encrypt. It returns [ErrDecode]
	// when the envelope is not base64 or is shorter than salt+nonce, and
	// [ErrAuthentication] when the tag does not verify. The two causes of
	// ErrAuthentication (wrong password, tampered envelope) are reported
	// identically and no plaintext is ever returned alongside an error.
	Decrypt(envelope, password string) (string, error)
}
