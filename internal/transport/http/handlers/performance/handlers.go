package performancehandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrapi/internal/domain/performance"
	"hrapi/internal/transport/http/api"
	"hrapi/internal/transport/http/shared"
)

type Handler struct {
	Store *performance.Store
}

func NewHandler(store *performance.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Get("/reviews", h.handleListReviews)
		r.Post("/reviews", h.handleCreateReview)
		r.Get("/reviews/{id}", h.handleGetReview)
		r.Put("/reviews/{id}", h.handleUpdateReview)
		r.Get("/development-plans", h.handleListPlans)
		r.Post("/development-plans", h.handleCreatePlan)
		r.Get("/analytics", h.handleAnalytics)
	})
}

func (h *Handler) handleListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	v := shared.NewValidator()
	v.Enum("status", query.Get("status"), performance.ReviewStatuses, "must be one of draft, in-progress, completed, approved")
	if v.Reject(w) {
		return
	}

	list := h.Store.ListReviews(performance.ReviewFilter{
		EmployeeID:   query.Get("employeeId"),
		ReviewPeriod: query.Get("reviewPeriod"),
		Status:       query.Get("status"),
	})
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"reviews": list,
		"total":   len(list),
	})
}

func (h *Handler) handleGetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	review, err := h.Store.GetReview(id)
	if err != nil {
		api.NotFound(w, "Performance review not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, review)
}

type createReviewRequest struct {
	EmployeeID     string                `json:"employeeId"`
	ReviewPeriod   string                `json:"reviewPeriod"`
	ReviewType     string                `json:"reviewType"`
	ReviewDate     string                `json:"reviewDate"`
	Reviewer       string                `json:"reviewer"`
	Status         string                `json:"status"`
	OverallRating  *float64              `json:"overallRating"`
	Ratings        *performance.Ratings  `json:"ratings"`
	Goals          []performance.Goal    `json:"goals"`
	Feedback       *performance.Feedback `json:"feedback"`
	NextReviewDate string                `json:"nextReviewDate"`
}

func (h *Handler) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var payload createReviewRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "Employee ID is required")
	v.Required("reviewPeriod", payload.ReviewPeriod, "Review period is required")
	v.Required("reviewType", payload.ReviewType, "Review type is required")
	v.Enum("reviewType", payload.ReviewType, performance.ReviewTypes, "must be one of annual, semi-annual, quarterly, probationary")
	v.Required("reviewer", payload.Reviewer, "Reviewer is required")
	v.Enum("status", payload.Status, performance.ReviewStatuses, "must be one of draft, in-progress, completed, approved")
	v.FloatRange("overallRating", payload.OverallRating, 1, 5, "must be between 1 and 5")
	if v.Reject(w) {
		return
	}

	status := payload.Status
	if status == "" {
		status = performance.ReviewStatusDraft
	}
	reviewDate := payload.ReviewDate
	if reviewDate == "" {
		reviewDate = shared.Today()
	}
	rating := 0.0
	if payload.OverallRating != nil {
		rating = *payload.OverallRating
	}

	review := h.Store.CreateReview(performance.Review{
		EmployeeID:     payload.EmployeeID,
		ReviewPeriod:   payload.ReviewPeriod,
		ReviewType:     payload.ReviewType,
		ReviewDate:     reviewDate,
		Reviewer:       payload.Reviewer,
		Status:         status,
		OverallRating:  rating,
		Ratings:        payload.Ratings,
		Goals:          payload.Goals,
		Feedback:       payload.Feedback,
		NextReviewDate: payload.NextReviewDate,
	})
	api.WriteJSON(w, http.StatusCreated, review)
}

func (h *Handler) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	var payload performance.ReviewUpdate
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.FloatRange("overallRating", payload.OverallRating, 1, 5, "must be between 1 and 5")
	if payload.Status != nil {
		v.Enum("status", *payload.Status, performance.ReviewStatuses, "must be one of draft, in-progress, completed, approved")
	}
	if payload.ReviewType != nil {
		v.Enum("reviewType", *payload.ReviewType, performance.ReviewTypes, "must be one of annual, semi-annual, quarterly, probationary")
	}
	if v.Reject(w) {
		return
	}

	review, err := h.Store.UpdateReview(id, payload)
	if err != nil {
		api.NotFound(w, "Performance review not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, review)
}

func (h *Handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	v := shared.NewValidator()
	v.Enum("status", query.Get("status"), performance.PlanStatuses, "must be one of draft, active, completed, cancelled")
	planYear := 0
	if raw := query.Get("planYear"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2020 || parsed > 2030 {
			v.Add("planYear", "must be an integer between 2020 and 2030")
		} else {
			planYear = parsed
		}
	}
	if v.Reject(w) {
		return
	}

	list := h.Store.ListPlans(performance.PlanFilter{
		EmployeeID: query.Get("employeeId"),
		PlanYear:   planYear,
		Status:     query.Get("status"),
	})
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"plans": list,
		"total": len(list),
	})
}

type createPlanRequest struct {
	EmployeeID string                  `json:"employeeId"`
	PlanYear   int                     `json:"planYear"`
	Status     string                  `json:"status"`
	Objectives []performance.Objective `json:"objectives"`
}

func (h *Handler) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var payload createPlanRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "Employee ID is required")
	v.IntRange("planYear", payload.PlanYear, 2020, 2030, "Valid plan year is required")
	v.Enum("status", payload.Status, performance.PlanStatuses, "must be one of draft, active, completed, cancelled")
	if v.Reject(w) {
		return
	}

	status := payload.Status
	if status == "" {
		status = "draft"
	}

	plan := h.Store.CreatePlan(performance.DevelopmentPlan{
		EmployeeID:  payload.EmployeeID,
		PlanYear:    payload.PlanYear,
		CreatedDate: shared.Today(),
		Status:      status,
		Objectives:  payload.Objectives,
	})
	api.WriteJSON(w, http.StatusCreated, plan)
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics := performance.ComputeAnalytics(h.Store.CompletedReviews(), r.URL.Query().Get("period"))
	api.WriteJSON(w, http.StatusOK, analytics)
}
