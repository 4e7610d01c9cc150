package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fort-note/internal/app"
	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/service"
	"github.com/MKhiriev/go-fort-note/internal/store"
	"github.com/MKhiriev/go-fort-note/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is ordered: the first matching entry wins. crypto.ErrDecode
// precedes service.ErrInconsistentState because an unlock of a locked note
// with undecodable content carries both.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{crypto.ErrAuthentication, errorResponse{http.StatusUnauthorized, app.MsgWrongPassword}},
	{crypto.ErrDecode, errorResponse{http.StatusUnprocessableEntity, app.MsgMalformedEnvelope}},
	{service.ErrNoteNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},
	{service.ErrEmptyPassword, errorResponse{http.StatusBadRequest, app.MsgEmptyPassword}},
	{service.ErrNoteLocked, errorResponse{http.StatusConflict, app.MsgNoteLocked}},
	{service.ErrInconsistentState, errorResponse{http.StatusConflict, app.MsgInconsistentState}},

	{validators.ErrEmptyPassword, errorResponse{http.StatusBadRequest, app.MsgEmptyPassword}},
	{validators.ErrPasswordTooLong, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrInvalidTitle, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrInvalidContent, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrEmptyNoteID, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrPersistence, errorResponse{http.StatusServiceUnavailable, app.MsgStorageUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
