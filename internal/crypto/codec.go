// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Envelope framing constants.
const (
	SaltSize   = 16
	NonceSize  = 12
	TagSize    = 16
	KeySize    = 32 // AES-256
	Iterations = 65536

	// HeaderSize is the length of the unencrypted prefix of an envelope.
	HeaderSize = SaltSize + NonceSize
)

// envelopeEncoding is standard base64 with padding and without line breaks.
var envelopeEncoding = base64.StdEncoding

// DeriveKey derives a 256-bit AES key from password and salt with
// PBKDF2-HMAC-SHA256 and a fixed iteration count. The result is never
// cached: the cost is paid on every call.
//
// salt must be exactly SaltSize bytes long; anything else is a programming
// error and panics.
func DeriveKey(password string, salt []byte) []byte {
	if len(salt) != SaltSize {
		panic(fmt.Sprintf("crypto: salt must be %d bytes, got %d", SaltSize, len(salt)))
	}
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}

// codec is the private implementation of [NoteCipher].
type codec struct {
	// random supplies salts and nonces. crypto/rand.Reader unless a test
	// replaces it.
	random io.Reader
}

// Option configures a codec built by [NewCodec].
type Option func(*codec)

// WithRandomSource replaces the CSPRNG used for salts and nonces.
func WithRandomSource(r io.Reader) Option {
	return func(c *codec) {
		c.random = r
	}
}

// NewCodec returns a [NoteCipher] that produces and opens AES-256-GCM
// envelopes keyed by [DeriveKey].
func NewCodec(opts ...Option) NoteCipher {
	c := &codec{random: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt implements [NoteCipher].
func (c *codec) Encrypt(plaintext, password string) (string, error) {
	// salt and nonce are read in one go so that the header is contiguous
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(c.random, header); err != nil {
		return "", fmt.Errorf("generate salt and nonce: %w", err)
	}
	salt, nonce := header[:SaltSize], header[SaltSize:]

	gcm, err := newGCM(DeriveKey(password, salt))
	if err != nil {
		return "", err
	}

	envelope := gcm.Seal(header, nonce, []byte(plaintext), nil)
	return envelopeEncoding.EncodeToString(envelope), nil
}

// Decrypt implements [NoteCipher].
func (c *codec) Decrypt(envelope, password string) (string, error) {
	blob, err := envelopeEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(blob) < HeaderSize {
		return "", fmt.Errorf("%w: %d bytes, need at least %d", ErrDecode, len(blob), HeaderSize)
	}

	salt, nonce, sealed := blob[:SaltSize], blob[SaltSize:HeaderSize], blob[HeaderSize:]

	gcm, err := newGCM(DeriveKey(password, salt))
	if err != nil {
		return "", err
	}

	// Open also rejects a sealed part shorter than the tag.
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrAuthentication
	}

	return string(plaintext), nil
}

// ValidEnvelope reports whether content is structurally an envelope: it
// decodes as base64 and is long enough to hold a header and a tag. It says
// nothing about which key, if any, opens it.
func ValidEnvelope(content string) bool {
	blob, err := envelopeEncoding.DecodeString(content)
	if err != nil {
		return false
	}
	return len(blob) >= HeaderSize+TagSize
}

// EnvelopeSize returns the decoded envelope length for a plaintext of n
// UTF-8 bytes.
func EnvelopeSize(n int) int {
	return HeaderSize + n + TagSize
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithTagSize(block, TagSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
