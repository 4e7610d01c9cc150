package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fort-note/internal/app"
	"github.com/MKhiriev/go-fort-note/internal/crypto"
	"github.com/MKhiriev/go-fort-note/internal/service"
	"github.com/MKhiriev/go-fort-note/internal/store"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), string(resp.Body()))
}

// mapStatus turns a non-2xx status and its plain-text body back into the
// error the server mapped it from.
func mapStatus(status int, rawBody string) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(rawBody)

	switch status {
	case http.StatusUnauthorized:
		return crypto.ErrAuthentication
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", service.ErrInconsistentState, crypto.ErrDecode)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("server: %w", store.ErrPersistence)

	case http.StatusBadRequest:
		if body == app.MsgEmptyPassword {
			return service.ErrEmptyPassword
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		if body == app.MsgNoteNotFound {
			return service.ErrNoteNotFound
		}
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		switch body {
		case app.MsgNoteLocked:
			return service.ErrNoteLocked
		case app.MsgInconsistentState:
			return service.ErrInconsistentState
		}
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)

	default:
		if body == "" {
			body = http.StatusText(status)
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, status, body)
	}
}
