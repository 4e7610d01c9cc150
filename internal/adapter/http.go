package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-fort-note/internal/config"
	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/utils"
	"github.com/MKhiriev/go-fort-note/models"
)

const traceIDHeader = "X-Trace-ID"

type httpNoteAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNoteAdapter constructs an HTTP implementation of [NoteAdapter]
// rooted at cfg.HTTPAddress. A bare host:port is taken as plain http.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPNoteAdapter(cfg config.Adapter, logger *logger.Logger) (NoteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		traceID, ok := utils.GetTraceIDFromContext(req.Context())
		if !ok {
			traceID = uuid.NewString()
		}
		req.SetHeader(traceIDHeader, traceID)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Str("trace_id", resp.Header().Get(traceIDHeader)).
			Dur("duration", resp.Time()).
			Msg("server responded")
		return nil
	})

	return &httpNoteAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [service.NoteService] via POST /api/notes.
func (h *httpNoteAdapter) Create(ctx context.Context, title, content string) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetBody(models.NoteInput{Title: title, Content: content}).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Update implements [service.NoteService] via PUT /api/notes/{id}.
func (h *httpNoteAdapter) Update(ctx context.Context, id, title, content string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetBody(models.NoteInput{Title: title, Content: content}).
		Put("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [service.NoteService] via DELETE /api/notes/{id}.
func (h *httpNoteAdapter) Delete(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// List implements [service.NoteService] via GET /api/notes.
func (h *httpNoteAdapter) List(ctx context.Context) ([]models.Note, error) {
	notes := []models.Note{}

	resp, err := h.request(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// Get implements [service.NoteService] via GET /api/notes/{id}.
func (h *httpNoteAdapter) Get(ctx context.Context, id string) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&note).
		Get("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Lock implements [service.NoteService] via POST /api/notes/{id}/lock.
func (h *httpNoteAdapter) Lock(ctx context.Context, id, password string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetBody(models.PasswordRequest{Password: password}).
		Post("/api/notes/{id}/lock")
	if err != nil {
		return fmt.Errorf("lock note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Unlock implements [service.NoteService] via POST /api/notes/{id}/unlock.
func (h *httpNoteAdapter) Unlock(ctx context.Context, id, password string) (string, error) {
	var unlocked models.UnlockResponse

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetBody(models.PasswordRequest{Password: password}).
		SetResult(&unlocked).
		Post("/api/notes/{id}/unlock")
	if err != nil {
		return "", fmt.Errorf("unlock note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return unlocked.Content, nil
}

// LockAll implements [service.NoteService] via POST /api/notes/lock-all.
func (h *httpNoteAdapter) LockAll(ctx context.Context, password string) (models.BulkResult, error) {
	return h.bulk(ctx, "/api/notes/lock-all", &models.PasswordRequest{Password: password})
}

// UnlockAll implements [service.NoteService] via POST /api/notes/unlock-all.
func (h *httpNoteAdapter) UnlockAll(ctx context.Context, password string) (models.BulkResult, error) {
	return h.bulk(ctx, "/api/notes/unlock-all", &models.PasswordRequest{Password: password})
}

// Reconcile implements [service.NoteService] via POST /api/notes/reconcile.
func (h *httpNoteAdapter) Reconcile(ctx context.Context) (models.BulkResult, error) {
	return h.bulk(ctx, "/api/notes/reconcile", nil)
}

// ServerVersion implements [NoteAdapter] via GET /api/version.
func (h *httpNoteAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpNoteAdapter) bulk(ctx context.Context, path string, body *models.PasswordRequest) (models.BulkResult, error) {
	var result models.BulkResult

	req := h.request(ctx).SetResult(&result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.BulkResult{}, fmt.Errorf("bulk request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BulkResult{}, err
	}

	return normalizeBulkResult(result), nil
}

func (h *httpNoteAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// normalizeBulkResult replaces lists a server omitted with empty ones.
func normalizeBulkResult(r models.BulkResult) models.BulkResult {
	if r.Changed == nil {
		r.Changed = []string{}
	}
	if r.Skipped == nil {
		r.Skipped = []string{}
	}
	if r.Failed == nil {
		r.Failed = []string{}
	}
	return r
}
