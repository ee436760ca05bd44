// Package handlers provides HTTP handlers for the support agent API.
package handlers

import (
	"encoding/json"
	"net/http"
)

// Client-error messages, fixed per endpoint contract.
const (
	errMissingFullPath    = "Missing full_path parameter"
	errMissingDownloadURL = "Missing download_url parameter"
	errMissingUserMessage = "Missing user_message parameter"
	errAPIKeyNotSet       = "Gemini API key not configured"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response body {"error": message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
