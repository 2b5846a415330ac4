package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

// Envelope is the uniform response body: a success flag, a user-facing
// message, and an optional payload.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope with an explicit status.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}

// Error maps a classified error to an HTTP status and writes its
// user-facing message.
func Error(w http.ResponseWriter, err error) {
	Fail(w, statusFor(err), apperr.MessageOf(err))
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindDuplicate, apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindReference:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
