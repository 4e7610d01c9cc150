// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/mock"
	"github.com/MKhiriev/go-fort-note/models"
)

func encryptOrFail(t *testing.T, plaintext, password string) string {
	t.Helper()
	envelope, err := crypto.NewCodec().Encrypt(plaintext, password)
	require.NoError(t, err)
	return envelope
}

func notesByID(t *testing.T, svc NoteService) map[string]models.Note {
	t.Helper()
	notes, err := svc.List(context.Background())
	require.NoError(t, err)
	out := make(map[string]models.Note, len(notes))
	for _, n := range notes {
		out[n.ID] = n
	}
	return out
}

func TestNoteService_LockAll(t *testing.T) {
	svc, repo, _ := newTestNoteService(t)
	ctx := context.Background()

	own := encryptOrFail(t, "<p>own</p>", "own password")
	require.NoError(t, repo.Save(ctx, []models.Note{
		{ID: "plain", Content: "<p>plain</p>", PlaintextLength: 5},
		{ID: "own", Content: own, Locked: true},
		{ID: "legacy", Content: "<p>flagged but plain</p>", Locked: true},
	}))

	result, err := svc.LockAll(ctx, "shared")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"plain", "legacy"}, result.Changed)
	assert.Equal(t, []string{"own"}, result.Skipped)
	assert.Empty(t, result.Failed)

	notes := notesByID(t, svc)
	for _, id := range []string{"plain", "legacy", "own"} {
		assert.True(t, notes[id].Locked, id)
		assert.True(t, crypto.ValidEnvelope(notes[id].Content), id)
	}
	assert.Equal(t, own, notes["own"].Content, "genuinely locked notes are not re-keyed")
	assert.Equal(t, 5, notes["plain"].PlaintextLength)

	got, err := svc.Unlock(ctx, "legacy", "shared")
	require.NoError(t, err)
	assert.Equal(t, "<p>flagged but plain</p>", got)
}

func TestNoteService_LockAllEmptyPassword(t *testing.T) {
	svc, _, _ := newTestNoteService(t)

	_, err := svc.LockAll(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	_, err = svc.UnlockAll(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestNoteService_LockAllEncryptFailureSavesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	cipher := mock.NewMockNoteCipher(ctrl)
	svc := NewNoteService(repo, cipher, logger.Nop())

	repo.EXPECT().Load(gomock.Any()).Return([]models.Note{{ID: "a", Content: "x"}, {ID: "b", Content: "y"}}, nil)
	cipher.EXPECT().Encrypt("x", "pw").Return("ZZZZ", nil)
	cipher.EXPECT().Encrypt("y", "pw").Return("", errors.New("entropy pool exhausted"))

	_, err := svc.LockAll(context.Background(), "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock note b")
}

func TestNoteService_UnlockAll(t *testing.T) {
	svc, repo, _ := newTestNoteService(t)
	ctx := context.Background()

	// 33 zero bytes look encrypted but are no envelope
	lookalike := base64.StdEncoding.EncodeToString(make([]byte, 33))
	require.NoError(t, repo.Save(ctx, []models.Note{
		{ID: "mine", Content: encryptOrFail(t, "<p>mine</p>", "shared"), Locked: true},
		{ID: "other", Content: encryptOrFail(t, "<p>other</p>", "different"), Locked: true},
		{ID: "flag-lost", Content: encryptOrFail(t, "<p>flag lost</p>", "shared")},
		{ID: "lookalike", Content: lookalike},
		{ID: "plain", Content: "<p>plain</p>"},
	}))
	before := notesByID(t, svc)

	result, err := svc.UnlockAll(ctx, "shared")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"mine", "flag-lost"}, result.Changed)
	assert.Equal(t, []string{"other"}, result.Failed)
	assert.Equal(t, []string{"lookalike"}, result.Skipped)

	after := notesByID(t, svc)
	assert.Equal(t, "<p>mine</p>", after["mine"].Content)
	assert.False(t, after["mine"].Locked)
	assert.Equal(t, 4, after["mine"].PlaintextLength)
	assert.Equal(t, "<p>flag lost</p>", after["flag-lost"].Content)
	assert.Equal(t, before["other"], after["other"], "failed notes keep their ciphertext")
	assert.Equal(t, before["lookalike"], after["lookalike"])
	assert.Equal(t, before["plain"], after["plain"])
	assert.False(t, strings.Contains(after["other"].Content, "Decryption failed"))
}

func TestNoteService_Reconcile(t *testing.T) {
	svc, repo, _ := newTestNoteService(t)
	ctx := context.Background()

	envelope := encryptOrFail(t, "<p>secret</p>", "pw")
	truncated := base64.StdEncoding.EncodeToString(make([]byte, 40))
	require.NoError(t, repo.Save(ctx, []models.Note{
		{ID: "flag-lost", Content: envelope},
		{ID: "flag-stuck", Content: "<p>Hello World</p>", Locked: true},
		{ID: "truncated", Content: truncated, Locked: true},
		{ID: "fine-locked", Content: envelope, Locked: true},
		{ID: "fine-plain", Content: "<p>x</p>"},
	}))
	before := notesByID(t, svc)

	result, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"flag-lost", "flag-stuck"}, result.Changed)
	assert.Equal(t, []string{"truncated"}, result.Skipped)
	assert.Empty(t, result.Failed)

	after := notesByID(t, svc)
	assert.True(t, after["flag-lost"].Locked)
	assert.Equal(t, envelope, after["flag-lost"].Content)
	assert.False(t, after["flag-stuck"].Locked)
	assert.Equal(t, 11, after["flag-stuck"].PlaintextLength)
	assert.Equal(t, before["truncated"], after["truncated"])
	assert.Equal(t, before["fine-locked"], after["fine-locked"])
	assert.Equal(t, before["fine-plain"], after["fine-plain"])

	// nothing left to repair
	result, err = svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
}

func TestNoteService_ReconcileWithoutChangesDoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteService(repo, crypto.NewCodec(), logger.Nop())

	repo.EXPECT().Load(gomock.Any()).Return([]models.Note{{ID: "a", Content: "<p>x</p>"}}, nil)

	result, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
	assert.NotNil(t, result.Skipped)
}
