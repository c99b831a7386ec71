package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmmd-lab/dmmd-go/internal/stats"
	"github.com/dmmd-lab/dmmd-go/internal/transform"
	"github.com/dmmd-lab/dmmd-go/internal/window"
)

// Store kinds accepted in the {kind} route parameter.
const (
	KindFull = "full"
	KindRaw  = "raw"
)

// WindowRequest represents a window transform request. A missing w_min or
// w_max falls back to the server configuration.
type WindowRequest struct {
	WMin  *int            `json:"w_min,omitempty"`
	WMax  *int            `json:"w_max,omitempty"`
	Store json.RawMessage `json:"store"`
}

// WindowResponse carries the transformed store.
type WindowResponse struct {
	Store interface{} `json:"store"`
}

// SummaryResponse carries per-window statistics.
type SummaryResponse struct {
	Windows []stats.WindowStats `json:"windows"`
}

// ReverseComplementHandler handles POST /api/window/revcomp/{kind}.
func (h *Handlers) ReverseComplementHandler(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, transform.ReverseComplementFull, transform.ReverseComplementRaw)
}

// FilterGapsHandler handles POST /api/window/gaps/{kind}.
func (h *Handlers) FilterGapsHandler(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, transform.FilterGapsFull, transform.FilterGapsRaw)
}

func (h *Handlers) transform(
	w http.ResponseWriter,
	r *http.Request,
	full func(window.Full, int, int) window.Full,
	raw func(window.Tot, int, int) window.Tot,
) {
	var req WindowRequest
	if !decode(w, r, &req) {
		return
	}

	wMin, wMax, err := h.windowRange(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch chi.URLParam(r, "kind") {
	case KindFull:
		s, err := window.DecodeFull(bytes.NewReader(req.Store))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, WindowResponse{Store: orEmpty(full(s, wMin, wMax))})
	case KindRaw:
		s, err := window.DecodeRaw(bytes.NewReader(req.Store))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, WindowResponse{Store: orEmpty(raw(s, wMin, wMax))})
	default:
		writeError(w, http.StatusNotFound, "unknown store kind, use 'full' or 'raw'")
	}
}

// SummaryHandler handles POST /api/window/summary/{kind}.
func (h *Handlers) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	var req WindowRequest
	if !decode(w, r, &req) {
		return
	}

	var windows []stats.WindowStats
	switch chi.URLParam(r, "kind") {
	case KindFull:
		s, err := window.DecodeFull(bytes.NewReader(req.Store))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		windows = stats.SummarizeFull(s)
	case KindRaw:
		s, err := window.DecodeRaw(bytes.NewReader(req.Store))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		windows = stats.SummarizeRaw(s)
	default:
		writeError(w, http.StatusNotFound, "unknown store kind, use 'full' or 'raw'")
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Windows: windows})
}

func (h *Handlers) windowRange(req WindowRequest) (int, int, error) {
	cfg := *h.cfg
	if req.WMin != nil {
		cfg.WMin = *req.WMin
	}
	if req.WMax != nil {
		cfg.WMax = *req.WMax
	}
	if err := cfg.Validate(); err != nil {
		return 0, 0, err
	}
	return cfg.WMin, cfg.WMax, nil
}

// orEmpty keeps a nil store from encoding as null.
func orEmpty[B any](s window.Store[B]) window.Store[B] {
	if s == nil {
		return window.Store[B]{}
	}
	return s
}
