package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxBodyBytes caps request bodies; task payloads are small
const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

type details struct {
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err, "status", status)
	}
}

func writeDetails(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, details{Details: msg})
}

// decodeJSON reads a single JSON document from the request body into dst.
// Every failure wraps errInvalidBody.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}

	if dec.More() {
		return fmt.Errorf("%w: trailing data", errInvalidBody)
	}

	_, _ = io.Copy(io.Discard, r.Body)
	return nil
}

// NotFound answers unmatched routes with a JSON 404
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeDetails(w, http.StatusNotFound, "Not found")
}
