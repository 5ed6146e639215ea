package jobshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrapi/internal/domain/jobs"
	"hrapi/internal/transport/http/api"
	"hrapi/internal/transport/http/shared"
)

type Handler struct {
	Store *jobs.Store
}

func NewHandler(store *jobs.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Get("/applications", h.handleListApplications)
			r.Post("/applications", h.handleSubmitApplication)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	v := shared.NewValidator()
	v.Enum("type", query.Get("type"), jobs.Types, "must be one of full-time, part-time, contract, internship")
	v.Enum("level", query.Get("level"), jobs.Levels, "must be one of entry, junior, mid, senior, executive")
	v.Enum("status", query.Get("status"), jobs.Statuses, "must be one of open, closed, on_hold")
	if v.Reject(w) {
		return
	}

	list := h.Store.List(jobs.Filter{
		Department: query.Get("department"),
		Location:   query.Get("location"),
		Type:       query.Get("type"),
		Level:      query.Get("level"),
		Status:     query.Get("status"),
	})
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"jobs":  list,
		"total": len(list),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	job, err := h.Store.Get(id)
	if err != nil {
		api.NotFound(w, "Job not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, job)
}

type createJobRequest struct {
	Title         string            `json:"title"`
	Department    string            `json:"department"`
	Location      string            `json:"location"`
	Type          string            `json:"type"`
	Level         string            `json:"level"`
	Salary        *jobs.SalaryRange `json:"salary"`
	Description   string            `json:"description"`
	Requirements  []string          `json:"requirements"`
	Benefits      []string          `json:"benefits"`
	ClosingDate   string            `json:"closingDate"`
	HiringManager string            `json:"hiringManager"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createJobRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "Job title is required")
	v.Required("department", payload.Department, "Department is required")
	v.Required("location", payload.Location, "Location is required")
	v.Required("type", payload.Type, "Employment type is required")
	v.Enum("type", payload.Type, jobs.Types, "must be one of full-time, part-time, contract, internship")
	v.Required("level", payload.Level, "Job level is required")
	v.Enum("level", payload.Level, jobs.Levels, "must be one of entry, junior, mid, senior, executive")
	v.Required("description", payload.Description, "Job description is required")
	if v.Reject(w) {
		return
	}

	// postedDate, status and applicantCount are server-assigned.
	job := h.Store.Create(jobs.Job{
		Title:          payload.Title,
		Department:     payload.Department,
		Location:       payload.Location,
		Type:           payload.Type,
		Level:          payload.Level,
		Salary:         payload.Salary,
		Description:    payload.Description,
		Requirements:   payload.Requirements,
		Benefits:       payload.Benefits,
		PostedDate:     shared.Today(),
		ClosingDate:    payload.ClosingDate,
		Status:         jobs.StatusOpen,
		HiringManager:  payload.HiringManager,
		ApplicantCount: 0,
	})
	api.WriteJSON(w, http.StatusCreated, job)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	var payload jobs.Update
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	if payload.Title != nil {
		v.Required("title", *payload.Title, "must not be empty")
	}
	if payload.Type != nil {
		v.Enum("type", *payload.Type, jobs.Types, "must be one of full-time, part-time, contract, internship")
	}
	if payload.Level != nil {
		v.Enum("level", *payload.Level, jobs.Levels, "must be one of entry, junior, mid, senior, executive")
	}
	if payload.Status != nil {
		v.Enum("status", *payload.Status, jobs.Statuses, "must be one of open, closed, on_hold")
	}
	if v.Reject(w) {
		return
	}

	job, err := h.Store.Update(id, payload)
	if err != nil {
		api.NotFound(w, "Job not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, job)
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	list := h.Store.ListApplications(id)
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"applications": list,
		"total":        len(list),
	})
}

type submitApplicationRequest struct {
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
	ResumeURL      string `json:"resumeUrl"`
	CoverLetter    string `json:"coverLetter"`
}

func (h *Handler) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	var payload submitApplicationRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("applicantName", payload.ApplicantName, "Applicant name is required")
	v.Email("applicantEmail", payload.ApplicantEmail, "Valid email is required")
	if v.Reject(w) {
		return
	}

	app, err := h.Store.SubmitApplication(id, jobs.Application{
		ApplicantName:   payload.ApplicantName,
		ApplicantEmail:  payload.ApplicantEmail,
		ResumeURL:       payload.ResumeURL,
		CoverLetter:     payload.CoverLetter,
		ApplicationDate: shared.Today(),
		Status:          jobs.ApplicationStatusNew,
		Notes:           "Application received",
	})
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			api.NotFound(w, "Job not found")
		case errors.Is(err, jobs.ErrJobNotOpen):
			api.BusinessRule(w, "This job is no longer accepting applications")
		default:
			api.ServerError(w, err.Error(), false)
		}
		return
	}
	api.WriteJSON(w, http.StatusCreated, app)
}
