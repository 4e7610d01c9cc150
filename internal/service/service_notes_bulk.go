// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/markup"
	"github.com/MKhiriev/go-fort-note/models"
)

func newBulkResult() models.BulkResult {
	return models.BulkResult{
		Changed: []string{},
		Skipped: []string{},
		Failed:  []string{},
	}
}

// LockAll encrypts every unlocked note, and every note flagged locked whose
// content is not an envelope, under password. Notes that already hold an
// envelope are skipped and keep their own password. An encryption failure
// aborts the whole call before anything is persisted.
func (s *noteService) LockAll(ctx context.Context, password string) (models.BulkResult, error) {
	if password == "" {
		return models.BulkResult{}, ErrEmptyPassword
	}

	notes, err := s.load(ctx)
	if err != nil {
		return models.BulkResult{}, err
	}

	log := s.log(ctx)
	result := newBulkResult()

	for i := range notes {
		note := &notes[i]

		if note.Locked && crypto.ValidEnvelope(note.Content) {
			result.Skipped = append(result.Skipped, note.ID)
			continue
		}
		if note.Locked {
			log.Warn().Str("func", "noteService.LockAll").Str("note_id", note.ID).Msg("locked note holds plaintext, encrypting it")
		}

		envelope, err := s.cipher.Encrypt(note.Content, password)
		if err != nil {
			log.Err(err).Str("func", "noteService.LockAll").Str("note_id", note.ID).Msg("failed to encrypt note")
			return models.BulkResult{}, fmt.Errorf("lock note %s: %w", note.ID, err)
		}

		note.Content = envelope
		note.Locked = true
		note.ModifiedAt = s.stamp(note.ModifiedAt)
		result.Changed = append(result.Changed, note.ID)
	}

	if len(result.Changed) > 0 {
		if err = s.save(ctx, notes); err != nil {
			return models.BulkResult{}, err
		}
	}

	return result, nil
}

// UnlockAll decrypts every locked note, and every unlocked note whose
// content looks encrypted, with password. A locked note that does not open
// is reported as failed and left untouched. An unlocked note that does not
// open is most likely plaintext that happens to look like base64 and is
// reported as skipped.
func (s *noteService) UnlockAll(ctx context.Context, password string) (models.BulkResult, error) {
	if password == "" {
		return models.BulkResult{}, ErrEmptyPassword
	}

	notes, err := s.load(ctx)
	if err != nil {
		return models.BulkResult{}, err
	}

	log := s.log(ctx)
	result := newBulkResult()

	for i := range notes {
		note := &notes[i]
		if !note.Locked && !crypto.LooksEncrypted(note.Content) {
			continue
		}

		plaintext, err := s.cipher.Decrypt(note.Content, password)
		switch {
		case err == nil:
			note.Content = plaintext
			note.Locked = false
			note.PlaintextLength = markup.PlaintextLength(plaintext)
			note.ModifiedAt = s.stamp(note.ModifiedAt)
			result.Changed = append(result.Changed, note.ID)

		case !errors.Is(err, crypto.ErrAuthentication) && !errors.Is(err, crypto.ErrDecode):
			log.Err(err).Str("func", "noteService.UnlockAll").Str("note_id", note.ID).Msg("failed to decrypt note")
			return models.BulkResult{}, fmt.Errorf("unlock note %s: %w", note.ID, err)

		case note.Locked:
			result.Failed = append(result.Failed, note.ID)

		default:
			result.Skipped = append(result.Skipped, note.ID)
		}
	}

	if len(result.Changed) > 0 {
		if err = s.save(ctx, notes); err != nil {
			return models.BulkResult{}, err
		}
	}

	log.Debug().Str("func", "noteService.UnlockAll").
		Int("changed", len(result.Changed)).
		Int("failed", len(result.Failed)).
		Msg("bulk unlock finished")
	return result, nil
}

// Reconcile repairs locked flags where the content heuristic and the
// envelope structure agree:
//   - unlocked, looks encrypted and is an envelope: flagged locked;
//   - locked, neither looks encrypted nor is an envelope: flagged unlocked.
//
// Notes where the two checks disagree are reported as skipped. Consistent
// notes are not listed. Content is never changed.
func (s *noteService) Reconcile(ctx context.Context) (models.BulkResult, error) {
	notes, err := s.load(ctx)
	if err != nil {
		return models.BulkResult{}, err
	}

	log := s.log(ctx)
	result := newBulkResult()

	for i := range notes {
		note := &notes[i]
		looks := crypto.LooksEncrypted(note.Content)
		valid := crypto.ValidEnvelope(note.Content)

		switch {
		case !note.Locked && looks && valid:
			note.Locked = true
		case note.Locked && !looks && !valid:
			note.Locked = false
			note.PlaintextLength = markup.PlaintextLength(note.Content)
		case looks != valid:
			result.Skipped = append(result.Skipped, note.ID)
			continue
		default:
			continue
		}

		log.Info().Str("func", "noteService.Reconcile").Str("note_id", note.ID).Bool("locked", note.Locked).Msg("repaired locked flag")
		result.Changed = append(result.Changed, note.ID)
	}

	if len(result.Changed) > 0 {
		if err = s.save(ctx, notes); err != nil {
			return models.BulkResult{}, err
		}
	}

	return result, nil
}
