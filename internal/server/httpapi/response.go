// Package httpapi exposes the public JSON API over HTTP: route wiring,
// request decoding, the session-token guard, and the response envelope.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// writeJSON renders the standard envelope. A 204 carries no body per the
// HTTP spec, so only the status line is sent.
func writeJSON(w http.ResponseWriter, status int, message string, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Status: status, Message: message, Data: data})
}

// decodeJSON parses the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
