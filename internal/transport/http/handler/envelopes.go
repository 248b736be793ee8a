package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventplug/signup-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ActivationEnvelope wraps the account activation response.
type ActivationEnvelope struct {
	Bearer string       `json:"Bearer,omitempty"`
	User   *domain.User `json:"user,omitempty"`
}

// PaginatedUsersEnvelope wraps paginated user list responses.
type PaginatedUsersEnvelope struct {
	Data       []domain.User `json:"data"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// writeResult writes an OTP lifecycle outcome; the status code is carried
// both on the wire and in the body.
func writeResult(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, domain.OTPResult{Message: msg, Status: status})
}

// httpError maps a service error onto an HTTP response. The three OTP
// failure kinds deliberately share one status code and differ only in
// message; unknown errors never leak their cause to the caller.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOTPNotFound):
		writeResult(w, http.StatusNotFound, domain.ErrOTPNotFound.Error())
	case errors.Is(err, domain.ErrOTPInvalid):
		writeResult(w, http.StatusNotFound, domain.ErrOTPInvalid.Error())
	case errors.Is(err, domain.ErrOTPExpired):
		writeResult(w, http.StatusNotFound, domain.ErrOTPExpired.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusUnprocessableEntity, "User Not Found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again later")
	}
}
