// Package api wires the dmmd HTTP handlers into a chi router.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/dmmd-lab/dmmd-go/api/handlers"
	"github.com/dmmd-lab/dmmd-go/api/middleware"
	"github.com/dmmd-lab/dmmd-go/internal/config"
)

// NewRouter returns the API router. cfg supplies the FASTA directory,
// chromosome enumeration and the default window range and shift settings.
func NewRouter(cfg *config.Config, logger logrus.FieldLogger) http.Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	h := handlers.New(cfg, logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/coords", func(r chi.Router) {
			r.Post("/shift", h.ShiftHandler)
		})

		r.Route("/fasta", func(r chi.Router) {
			r.Get("/chromosomes", h.ChromosomesHandler)
		})

		r.Route("/window", func(r chi.Router) {
			r.Post("/revcomp/{kind}", h.ReverseComplementHandler)
			r.Post("/gaps/{kind}", h.FilterGapsHandler)
			r.Post("/summary/{kind}", h.SummaryHandler)
		})
	})

	return r
}
