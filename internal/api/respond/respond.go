// Package respond centralizes the JSON reply conventions of the journal API.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// WriteJSON marshals data and writes it with the given status code. The body
// is encoded before the header goes out, so an encoding failure still yields
// a clean 500.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// WriteError writes an ErrorResponse with the given status and message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	WriteJSON(w, statusCode, ErrorResponse{Status: statusCode, Error: message})
}

// WriteBadRequest writes a 400 reply.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 reply.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError writes a 500 reply.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}
