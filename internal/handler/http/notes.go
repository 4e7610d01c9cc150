// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fort-note/internal/logger"
	"github.com/MKhiriev/go-fort-note/internal/utils"
	"github.com/MKhiriev/go-fort-note/models"
)

// maxBodySize caps request bodies; notes are bounded by the validator well
// below this.
const maxBodySize = 8 << 20

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.List(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listNotes", err)
		return
	}

	h.writeJSON(w, r, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var input models.NoteInput
	if err := h.decodeBody(w, r, &input); err != nil {
		h.writeError(w, r, "*Handler.createNote", err)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), input.Title, input.Content)
	if err != nil {
		h.writeError(w, r, "*Handler.createNote", err)
		return
	}

	logger.FromRequest(r).Debug().Str("func", "*Handler.createNote").Str("note_id", note.ID).Msg("note created")
	h.writeJSON(w, r, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getNote", err)
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "*Handler.getNote", err)
		return
	}

	h.writeJSON(w, r, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	var input models.NoteInput
	if err = h.decodeBody(w, r, &input); err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	if err = h.services.NoteService.Update(r.Context(), id, input.Title, input.Content); err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.lockNote", err)
		return
	}

	var req models.PasswordRequest
	if err = h.decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.lockNote", err)
		return
	}

	if err = h.services.NoteService.Lock(r.Context(), id, req.Password); err != nil {
		h.writeError(w, r, "*Handler.lockNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlockNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.unlockNote", err)
		return
	}

	var req models.PasswordRequest
	if err = h.decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.unlockNote", err)
		return
	}

	content, err := h.services.NoteService.Unlock(r.Context(), id, req.Password)
	if err != nil {
		h.writeError(w, r, "*Handler.unlockNote", err)
		return
	}

	h.writeJSON(w, r, models.UnlockResponse{Content: content}, http.StatusOK)
}

func (h *Handler) lockAll(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.lockAll", err)
		return
	}

	result, err := h.services.NoteService.LockAll(r.Context(), req.Password)
	if err != nil {
		h.writeError(w, r, "*Handler.lockAll", err)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) unlockAll(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, "*Handler.unlockAll", err)
		return
	}

	result, err := h.services.NoteService.UnlockAll(r.Context(), req.Password)
	if err != nil {
		h.writeError(w, r, "*Handler.unlockAll", err)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.NoteService.Reconcile(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.reconcile", err)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

// decodeBody decodes a JSON body into dst and runs the note validator on it.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return h.validator.Validate(r.Context(), dst)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError logs err and answers with the status and plain-text message
// mapped from it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg(resp.message)

	http.Error(w, resp.message, resp.status)
}

func noteIDFromRequest(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", ErrEmptyNoteID
	}
	return id, nil
}

