package vacationshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrapi/internal/domain/vacations"
	"hrapi/internal/transport/http/api"
	"hrapi/internal/transport/http/shared"
)

type Handler struct {
	Store *vacations.Store
}

func NewHandler(store *vacations.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/vacations", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/balance/{employeeId}", h.handleBalance)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/approve", h.handleApprove)
			r.Put("/reject", h.handleReject)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	v := shared.NewValidator()
	v.Enum("status", query.Get("status"), vacations.Statuses, "must be one of pending, approved, rejected, cancelled")
	v.Enum("type", query.Get("type"), vacations.Types, "must be one of annual, sick, personal, maternity, paternity")
	if v.Reject(w) {
		return
	}

	list := h.Store.List(vacations.Filter{
		EmployeeID: query.Get("employeeId"),
		Status:     query.Get("status"),
		Type:       query.Get("type"),
	})
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"vacations": list,
		"total":     len(list),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	request, err := h.Store.Get(id)
	if err != nil {
		api.NotFound(w, "Vacation request not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, request)
}

type createRequest struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Days       int    `json:"days"`
	Reason     string `json:"reason"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "Employee ID is required")
	v.Required("type", payload.Type, "must be one of annual, sick, personal, maternity, paternity")
	v.Enum("type", payload.Type, vacations.Types, "must be one of annual, sick, personal, maternity, paternity")
	start, startOK := v.Date("startDate", payload.StartDate, "Valid start date is required")
	end, endOK := v.Date("endDate", payload.EndDate, "Valid end date is required")
	v.IntMin("days", payload.Days, 1, "Days must be a positive integer")
	if v.Reject(w) {
		return
	}

	if startOK && endOK {
		if err := vacations.ValidateRange(start, end); err != nil {
			api.BusinessRule(w, "End date must be after start date")
			return
		}
	}

	request := h.Store.Create(vacations.Request{
		EmployeeID:  payload.EmployeeID,
		Type:        payload.Type,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Days:        payload.Days,
		Status:      vacations.StatusPending,
		ApprovedBy:  nil,
		RequestDate: shared.Today(),
		Reason:      payload.Reason,
	})
	api.WriteJSON(w, http.StatusCreated, request)
}

type approveRequest struct {
	ApprovedBy string `json:"approvedBy"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	var payload approveRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("approvedBy", payload.ApprovedBy, "Approver name is required")
	if v.Reject(w) {
		return
	}

	request, err := h.Store.Approve(id, payload.ApprovedBy)
	if err != nil {
		api.NotFound(w, "Vacation request not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, request)
}

type rejectRequest struct {
	RejectedBy      string `json:"rejectedBy"`
	RejectionReason string `json:"rejectionReason"`
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	var payload rejectRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("rejectedBy", payload.RejectedBy, "Rejector name is required")
	if v.Reject(w) {
		return
	}

	request, err := h.Store.Reject(id, payload.RejectedBy, payload.RejectionReason)
	if err != nil {
		api.NotFound(w, "Vacation request not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, request)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	balance, err := h.Store.GetBalance(employeeID)
	if err != nil {
		api.NotFound(w, "Employee vacation balance not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, balance)
}
