package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-fort-note/models"
)

// serializedNoteService runs every call of the wrapped service under one
// mutex, so concurrent callers cannot interleave their load-mutate-persist
// cycles.
type serializedNoteService struct {
	mu    sync.Mutex
	inner NoteService
}

// NewSerializedNoteService wraps inner so that it may be shared between
// goroutines.
func NewSerializedNoteService(inner NoteService) NoteService {
	return &serializedNoteService{inner: inner}
}

func (s *serializedNoteService) Create(ctx context.Context, title, content string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Create(ctx, title, content)
}

func (s *serializedNoteService) Update(ctx context.Context, id, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Update(ctx, id, title, content)
}

func (s *serializedNoteService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Delete(ctx, id)
}

func (s *serializedNoteService) List(ctx context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.List(ctx)
}

func (s *serializedNoteService) Get(ctx context.Context, id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(ctx, id)
}

func (s *serializedNoteService) Lock(ctx context.Context, id, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Lock(ctx, id, password)
}

func (s *serializedNoteService) Unlock(ctx context.Context, id, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Unlock(ctx, id, password)
}

func (s *serializedNoteService) LockAll(ctx context.Context, password string) (models.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.LockAll(ctx, password)
}

func (s *serializedNoteService) UnlockAll(ctx context.Context, password string) (models.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.UnlockAll(ctx, password)
}

func (s *serializedNoteService) Reconcile(ctx context.Context) (models.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Reconcile(ctx)
}
