// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/crypto"
	httphandler "github.com/MKhiriev/go-fort-note/internal/handler/http"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/service"
	"github.com/MKhiriev/go-fort-note/internal/store"
	"github.com/MKhiriev/go-fort-note/internal/utils"
	"github.com/MKhiriev/go-fort-note/models"
)

func newTestAdapter(t *testing.T, serverURL string) NoteAdapter {
	t.Helper()

	a, err := NewHTTPNoteAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 10 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// newLiveAdapter runs the real HTTP API over an in-memory store.
func newLiveAdapter(t *testing.T) NoteAdapter {
	t.Helper()

	services, err := service.NewServices(store.NewMemoryStorage(), config.App{Version: "1.4.0"}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(httphandler.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return newTestAdapter(t, srv.URL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://notes.example.com/ ", want: "https://notes.example.com"},
		{raw: "http://127.0.0.1:9000", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
		{raw: "http://%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPNoteAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPNoteAdapter(config.Adapter{}, logger.Nop())

	assert.ErrorContains(t, err, "invalid adapter http address")
}

func TestAdapter_Lifecycle(t *testing.T) {
	a := newLiveAdapter(t)
	ctx := context.Background()

	notes, err := a.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	created, err := a.Create(ctx, "Diary", "<p>Hello World</p>")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 11, created.PlaintextLength)

	require.NoError(t, a.Update(ctx, created.ID, "Diary", "<p>Hello again</p>"))

	require.NoError(t, a.Lock(ctx, created.ID, "secret"))
	locked, err := a.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, locked.Locked)
	assert.True(t, crypto.ValidEnvelope(locked.Content))

	err = a.Update(ctx, created.ID, "x", "y")
	assert.ErrorIs(t, err, service.ErrNoteLocked)

	_, err = a.Unlock(ctx, created.ID, "wrong")
	assert.ErrorIs(t, err, crypto.ErrAuthentication)

	plaintext, err := a.Unlock(ctx, created.ID, "secret")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello again</p>", plaintext)

	require.NoError(t, a.Delete(ctx, created.ID))
	_, err = a.Get(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNoteNotFound)

	version, err := a.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)
}

func TestAdapter_ErrorsRoundTrip(t *testing.T) {
	a := newLiveAdapter(t)
	ctx := context.Background()

	err := a.Lock(ctx, "missing", "pw")
	assert.ErrorIs(t, err, service.ErrNoteNotFound)

	_, err = a.Unlock(ctx, "missing", "pw")
	assert.ErrorIs(t, err, service.ErrNoteNotFound)

	note, err := a.Create(ctx, "T", "<p>x</p>")
	require.NoError(t, err)

	err = a.Lock(ctx, note.ID, "")
	assert.ErrorIs(t, err, service.ErrEmptyPassword)

	// unknown ids on update and delete are silent
	assert.NoError(t, a.Update(ctx, "missing", "t", "c"))
	assert.NoError(t, a.Delete(ctx, "missing"))
}

func TestAdapter_BulkOperations(t *testing.T) {
	a := newLiveAdapter(t)
	ctx := context.Background()

	first, err := a.Create(ctx, "one", "<p>1</p>")
	require.NoError(t, err)
	second, err := a.Create(ctx, "two", "<p>2</p>")
	require.NoError(t, err)

	res, err := a.LockAll(ctx, "pw")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, res.Changed)
	assert.Empty(t, res.Failed)

	res, err = a.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Changed)
	assert.NotNil(t, res.Skipped)

	res, err = a.UnlockAll(ctx, "pw")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, res.Changed)
}

func TestAdapter_MalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "malformed encrypted content", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Unlock(context.Background(), "n1", "pw")

	assert.ErrorIs(t, err, crypto.ErrDecode)
	assert.ErrorIs(t, err, service.ErrInconsistentState)
}

func TestAdapter_ForwardsTraceID(t *testing.T) {
	got := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get(traceIDHeader)
		_, _ = utils.WriteJSON(w, []models.Note{}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.List(utils.WithTraceID(context.Background(), "cli-trace"))
	require.NoError(t, err)
	assert.Equal(t, "cli-trace", <-got)

	_, err = a.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, <-got)
}

func TestAdapter_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).List(context.Background())

	assert.ErrorContains(t, err, "list notes request")
}
