// Package handlers provides HTTP handlers for the dmmd API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dmmd-lab/dmmd-go/internal/config"
)

// Handlers serves the dataset operations using the server's configuration
// for any setting a request leaves out.
type Handlers struct {
	cfg    *config.Config
	logger logrus.FieldLogger
}

// New returns handlers backed by cfg. A nil logger uses the standard logger.
func New(cfg *config.Config, logger logrus.FieldLogger) *Handlers {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handlers{cfg: cfg, logger: logger}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
