// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "strings"

// minLooksEncryptedSize is the decoded length an envelope must exceed to be
// taken for one: salt, nonce and at least a few bytes of sealed data.
const minLooksEncryptedSize = 32

// LooksEncrypted guesses whether content is an envelope rather than
// plaintext markup. It is used only to repair records whose locked flag
// disagrees with their content and must not be treated as proof either way:
// a base64-looking plaintext note is a false positive, and a truncated
// envelope is a false negative.
//
// Rules, first match wins:
//  1. empty or whitespace only: false
//  2. contains '<', '>' or a space: false
//  3. any byte outside the base64 alphabet: false
//  4. decodes to minLooksEncryptedSize bytes or fewer: false
//  5. true
func LooksEncrypted(content string) bool {
	s := strings.TrimSpace(content)
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, "<> ") {
		return false
	}
	if !isBase64Alphabet(s) {
		return false
	}

	decoded, err := envelopeEncoding.DecodeString(s)
	if err != nil {
		return false
	}
	return len(decoded) > minLooksEncryptedSize
}

func isBase64Alphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z',
			c >= 'a' && c <= 'z',
			c >= '0' && c <= '9',
			c == '+', c == '/', c == '=':
		default:
			return false
		}
	}
	return true
}
