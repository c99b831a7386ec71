package handlers

import (
	"net/http"

	"github.com/dmmd-lab/dmmd-go/internal/fasta"
	"github.com/dmmd-lab/dmmd-go/internal/stats"
)

// ChromosomeResponse describes one chromosome read from the FASTA directory.
type ChromosomeResponse struct {
	Name      string                  `json:"name"`
	Sequences []string                `json:"sequences,omitempty"`
	Stats     *stats.SequenceSetStats `json:"stats"`
	Warning   string                  `json:"warning,omitempty"`
}

// ChromosomesResponse lists chromosomes in autosome-then-allosome order.
type ChromosomesResponse struct {
	Chromosomes []ChromosomeResponse `json:"chromosomes"`
	Warnings    int                  `json:"warnings"`
}

// ChromosomesHandler handles GET /api/fasta/chromosomes. Sequences are left
// out when the query has sequences=false.
func (h *Handlers) ChromosomesHandler(w http.ResponseWriter, r *http.Request) {
	withSeqs := r.URL.Query().Get("sequences") != "false"

	reader := fasta.NewReader(h.cfg.DirFas)
	reader.Logger = h.logger
	chrs := reader.ReadChromosomes(h.cfg.NumAutosomes, h.cfg.Allosomes)

	resp := ChromosomesResponse{Chromosomes: make([]ChromosomeResponse, len(chrs))}
	for i, c := range chrs {
		cr := ChromosomeResponse{
			Name:  c.Name,
			Stats: stats.FromSequences(c.Sequences),
		}
		if withSeqs {
			cr.Sequences = c.Sequences
		}
		if c.Err != nil {
			cr.Warning = c.Err.Error()
			resp.Warnings++
		}
		resp.Chromosomes[i] = cr
	}

	writeJSON(w, http.StatusOK, resp)
}
