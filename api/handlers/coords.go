package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-gota/gota/dataframe"

	"github.com/dmmd-lab/dmmd-go/internal/coords"
)

// ShiftRequest represents a coordinate shift request. Each table is a JSON
// array of row objects with a numeric ColCoo field.
type ShiftRequest struct {
	NumChr *int              `json:"num_chr,omitempty"`
	CooDis *int              `json:"coo_dis,omitempty"`
	Tables []json.RawMessage `json:"tables"`
}

// ShiftResponse carries the shifted tables, one row array per table.
type ShiftResponse struct {
	Tables []json.RawMessage `json:"tables"`
}

// ShiftHandler handles POST /api/coords/shift.
func (h *Handlers) ShiftHandler(w http.ResponseWriter, r *http.Request) {
	var req ShiftRequest
	if !decode(w, r, &req) {
		return
	}

	numChr, delta := h.cfg.NumChr, h.cfg.CooDis
	if req.NumChr != nil {
		numChr = *req.NumChr
	}
	if req.CooDis != nil {
		delta = *req.CooDis
	}

	tables := make([]dataframe.DataFrame, len(req.Tables))
	for i, raw := range req.Tables {
		// Load errors stay on the frame; Shift reports them for used tables.
		tables[i], _ = coords.ReadJSON(bytes.NewReader(raw))
	}

	shifted, err := coords.Shift(tables, numChr, delta)
	if err != nil {
		var aerr *coords.ArityError
		var serr *coords.SchemaError
		if errors.As(err, &aerr) || errors.As(err, &serr) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.WithError(err).Error("shifting coordinates")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ShiftResponse{Tables: make([]json.RawMessage, len(shifted))}
	for i, df := range shifted {
		var buf bytes.Buffer
		if err := df.WriteJSON(&buf); err != nil {
			h.logger.WithError(err).Error("encoding table")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Tables[i] = buf.Bytes()
	}

	writeJSON(w, http.StatusOK, resp)
}
