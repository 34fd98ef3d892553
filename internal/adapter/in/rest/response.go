package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"postboard/internal/model"
	"postboard/internal/service"

	"github.com/go-chi/render"
)

const (
	codeValidation            = "VALIDATION_ERROR"
	codeModerationRejected    = "MODERATION_REJECTED"
	codeModerationUnavailable = "MODERATION_UNAVAILABLE"
	codeNotFound              = "NOT_FOUND"
	codeInternal              = "INTERNAL_ERROR"
)

const maxBodyBytes = 1 << 20

// envelope is the body of every non-list response. Status mirrors the
// status line.
type envelope struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	User    *model.User    `json:"user,omitempty"`
	Post    *model.Post    `json:"post,omitempty"`
	Comment *model.Comment `json:"comment,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	body.Status = status
	render.Status(r, status)
	render.JSON(w, r, body)
}

// writeList renders items as a bare array and advertises the next page, if any.
func writeList[T any](w http.ResponseWriter, r *http.Request, items []T, nextCursor *string) {
	if items == nil {
		items = []T{}
	}
	if nextCursor != nil {
		w.Header().Set(nextCursorHeader, *nextCursor)
	}
	render.JSON(w, r, items)
}

type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

// decodeJSON reads a single JSON object. Unknown fields are rejected; an
// empty body decodes to the zero value so field validation reports it.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return &requestError{msg: fmt.Sprintf("field '%s' has the wrong type", typeErr.Field)}
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return &requestError{msg: fmt.Sprintf("field '%s' is not allowed", field)}
		default:
			return &requestError{msg: "malformed JSON body"}
		}
	}
	return nil
}

// mapServiceError turns an error into a status, a machine code and a message
// that is safe to show the caller.
func mapServiceError(resource string, err error) (int, string, string) {
	var (
		verr *service.ValidationError
		rerr *requestError
	)
	switch {
	case errors.As(err, &rerr):
		return http.StatusBadRequest, codeValidation, rerr.msg
	case errors.As(err, &verr):
		return http.StatusBadRequest, codeValidation, verr.Message
	case errors.Is(err, service.ErrInvalidID):
		return http.StatusBadRequest, codeValidation, "invalid identifier"
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, codeValidation, "invalid request"
	case errors.Is(err, service.ErrModerationRejected):
		return http.StatusBadRequest, codeModerationRejected, "comment rejected as offensive"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, codeNotFound, resource + " not found"
	case errors.Is(err, service.ErrModerationUnavailable):
		return http.StatusServiceUnavailable, codeModerationUnavailable, "moderation is unavailable, try again later"
	default:
		return http.StatusInternalServerError, codeInternal, "internal error"
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, resource string, err error) {
	status, code, msg := mapServiceError(resource, err)
	writeEnvelope(w, r, status, envelope{Message: msg, Error: code})
}
