package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrapi/internal/domain/reports"
	"hrapi/internal/transport/http/api"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/headcount", h.handleHeadcount)
	})
}

// handleHeadcount returns the headcount summary as JSON, or as a PDF
// document when the client asks for one via the Accept header or the
// format query parameter.
func (h *Handler) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "pdf" || r.Header.Get("Accept") == "application/pdf" {
		doc, err := h.Service.HeadcountPDF()
		if err != nil {
			api.Error(w, http.StatusInternalServerError, "Failed to generate report")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="headcount-report.pdf"`)
		w.WriteHeader(http.StatusOK)
		w.Write(doc)
		return
	}

	api.WriteJSON(w, http.StatusOK, h.Service.Headcount())
}
