// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/markup"
	"github.com/MKhiriev/go-fort-note/internal/store"
	"github.com/MKhiriev/go-fort-note/internal/utils"
	"github.com/MKhiriev/go-fort-note/models"
)

type noteService struct {
	repository store.NoteRepository
	cipher     crypto.NoteCipher

	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

// Option configures a note service built by [NewNoteService].
type Option func(*noteService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *noteService) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUIDv7 generator used for new notes.
func WithIDGenerator(newID func() string) Option {
	return func(s *noteService) {
		s.newID = newID
	}
}

// NewNoteService returns the [NoteService] over repository, encrypting with
// cipher.
func NewNoteService(repository store.NoteRepository, cipher crypto.NoteCipher, logger *logger.Logger, opts ...Option) NoteService {
	s := &noteService{
		repository: repository,
		cipher:     cipher,
		now:        time.Now,
		newID:      utils.NewUUIDGenerator().Generate,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteService) Create(ctx context.Context, title, content string) (models.Note, error) {
	notes, err := s.load(ctx)
	if err != nil {
		return models.Note{}, err
	}

	now := s.now().UnixMilli()
	note := models.Note{
		ID:              s.newID(),
		Title:           title,
		Content:         content,
		CreatedAt:       now,
		ModifiedAt:      now,
		PlaintextLength: markup.PlaintextLength(content),
	}

	notes = append([]models.Note{note}, notes...)
	if err = s.save(ctx, notes); err != nil {
		return models.Note{}, err
	}

	s.log(ctx).Debug().Str("func", "noteService.Create").Str("note_id", note.ID).Msg("note created")
	return note, nil
}

func (s *noteService) Update(ctx context.Context, id, title, content string) error {
	notes, err := s.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(notes, id)
	if i < 0 {
		s.log(ctx).Debug().Str("func", "noteService.Update").Str("note_id", id).Msg("unknown note, nothing to update")
		return nil
	}
	if notes[i].Locked {
		return fmt.Errorf("update note %s: %w", id, ErrNoteLocked)
	}

	notes[i].Title = title
	notes[i].Content = content
	notes[i].PlaintextLength = markup.PlaintextLength(content)
	notes[i].ModifiedAt = s.stamp(notes[i].ModifiedAt)

	return s.save(ctx, notes)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	notes, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	return s.save(ctx, kept)
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	return s.load(ctx)
}

func (s *noteService) Get(ctx context.Context, id string) (models.Note, error) {
	notes, err := s.load(ctx)
	if err != nil {
		return models.Note{}, err
	}

	i := indexOf(notes, id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("get note %s: %w", id, ErrNoteNotFound)
	}
	return notes[i], nil
}

func (s *noteService) Lock(ctx context.Context, id, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	notes, err := s.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(notes, id)
	if i < 0 {
		return fmt.Errorf("lock note %s: %w", id, ErrNoteNotFound)
	}

	note := &notes[i]
	if note.Locked {
		if !crypto.ValidEnvelope(note.Content) {
			s.log(ctx).Warn().Str("func", "noteService.Lock").Str("note_id", id).Msg("note is flagged locked but holds no envelope")
			return fmt.Errorf("lock note %s: %w", id, ErrInconsistentState)
		}
		return nil
	}

	envelope, err := s.cipher.Encrypt(note.Content, password)
	if err != nil {
		s.log(ctx).Err(err).Str("func", "noteService.Lock").Str("note_id", id).Msg("failed to encrypt note")
		return fmt.Errorf("lock note %s: %w", id, err)
	}

	note.Content = envelope
	note.Locked = true
	note.ModifiedAt = s.stamp(note.ModifiedAt)

	return s.save(ctx, notes)
}

func (s *noteService) Unlock(ctx context.Context, id, password string) (string, error) {
	notes, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	i := indexOf(notes, id)
	if i < 0 {
		return "", fmt.Errorf("unlock note %s: %w", id, ErrNoteNotFound)
	}

	note := &notes[i]
	if !note.Locked {
		return note.Content, nil
	}
	if password == "" {
		return "", ErrEmptyPassword
	}
	if !crypto.ValidEnvelope(note.Content) {
		s.log(ctx).Warn().Str("func", "noteService.Unlock").Str("note_id", id).Msg("note is flagged locked but holds no envelope")
		return "", fmt.Errorf("unlock note %s: %w: %w", id, ErrInconsistentState, crypto.ErrDecode)
	}

	plaintext, err := s.cipher.Decrypt(note.Content, password)
	if err != nil {
		// wrong password and tampering look the same, only the id is logged
		s.log(ctx).Info().Str("func", "noteService.Unlock").Str("note_id", id).Msg("note did not open")
		return "", fmt.Errorf("unlock note %s: %w", id, err)
	}

	note.Content = plaintext
	note.Locked = false
	note.PlaintextLength = markup.PlaintextLength(plaintext)
	note.ModifiedAt = s.stamp(note.ModifiedAt)

	if err = s.save(ctx, notes); err != nil {
		return "", err
	}
	return plaintext, nil
}

// load reads the collection. A corrupt collection is recovered as empty:
// the next persist overwrites whatever could not be decoded.
func (s *noteService) load(ctx context.Context) ([]models.Note, error) {
	notes, err := s.repository.Load(ctx)
	if errors.Is(err, store.ErrCorruptCollection) {
		s.log(ctx).Warn().Err(err).Str("func", "noteService.load").Msg("stored notes are unreadable, continuing with an empty collection")
		return []models.Note{}, nil
	}
	if err != nil {
		s.log(ctx).Err(err).Str("func", "noteService.load").Msg("failed to load notes")
		return nil, err
	}
	return notes, nil
}

func (s *noteService) save(ctx context.Context, notes []models.Note) error {
	if err := s.repository.Save(ctx, notes); err != nil {
		s.log(ctx).Err(err).Str("func", "noteService.save").Int("notes", len(notes)).Msg("failed to persist notes")
		return err
	}
	return nil
}

// log returns the request-scoped logger from ctx, or the one the service
// was built with.
func (s *noteService) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

// stamp returns the current time in epoch milliseconds, never earlier than
// prev.
func (s *noteService) stamp(prev int64) int64 {
	now := s.now().UnixMilli()
	if now < prev {
		return prev
	}
	return now
}

func indexOf(notes []models.Note, id string) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}
