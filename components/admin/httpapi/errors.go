package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-admin-console/components/admin"
	"github.com/goliatone/go-admin-console/components/admin/commands"
	"github.com/goliatone/go-admin-console/components/collection"
)

// ErrBadRequest wraps payload decoding failures.
var ErrBadRequest = errors.New("httpapi: malformed request")

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// StatusBody reports an operation without a page payload.
type StatusBody struct {
	Status string `json:"status"`
}

// Noop is returned when the addressed record does not exist.
var Noop = StatusBody{Status: "noop"}

// Status maps an operation error onto an HTTP status code.
func Status(err error) int {
	switch {
	case err == nil, errors.Is(err, commands.ErrNotFound):
		return http.StatusOK
	case collection.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, collection.ErrUnknownField),
		errors.Is(err, collection.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, admin.ErrUnknownSession), errors.Is(err, admin.ErrUnknownCollection):
		return http.StatusNotFound
	case errors.Is(err, collection.ErrNoDraft):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Failure builds the status and body for err. Validation failures carry the
// operator message unchanged.
func Failure(err error) (int, any) {
	if errors.Is(err, commands.ErrNotFound) {
		return http.StatusOK, Noop
	}
	return Status(err), ErrorBody{Error: err.Error()}
}

// WriteJSON encodes body with status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decode(body []byte, v any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Join(ErrBadRequest, err)
	}
	return nil
}
