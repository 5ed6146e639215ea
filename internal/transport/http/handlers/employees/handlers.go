package employeeshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrapi/internal/domain/employees"
	"hrapi/internal/transport/http/api"
	"hrapi/internal/transport/http/shared"
)

type Handler struct {
	Store *employees.Store
}

func NewHandler(store *employees.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	v := shared.NewValidator()
	v.Enum("status", query.Get("status"), employees.Statuses, "must be one of active, inactive, terminated")
	if v.Reject(w) {
		return
	}

	list := h.Store.List(employees.Filter{
		Department: query.Get("department"),
		Status:     query.Get("status"),
		Location:   query.Get("location"),
	})
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"employees": list,
		"total":     len(list),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	emp, err := h.Store.Get(id)
	if err != nil {
		api.NotFound(w, "Employee not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, emp)
}

type createEmployeeRequest struct {
	EmployeeID string  `json:"employeeId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Manager    *string `json:"manager"`
	HireDate   string  `json:"hireDate"`
	Salary     float64 `json:"salary"`
	Status     string  `json:"status"`
	Location   string  `json:"location"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createEmployeeRequest
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "Employee ID is required")
	v.Required("firstName", payload.FirstName, "First name is required")
	v.Required("lastName", payload.LastName, "Last name is required")
	v.Email("email", payload.Email, "Valid email is required")
	v.Required("department", payload.Department, "Department is required")
	v.Required("position", payload.Position, "Position is required")
	v.Enum("status", payload.Status, employees.Statuses, "must be one of active, inactive, terminated")
	if v.Reject(w) {
		return
	}

	status := payload.Status
	if status == "" {
		status = employees.StatusActive
	}

	emp, err := h.Store.Create(employees.Employee{
		EmployeeID: payload.EmployeeID,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Department: payload.Department,
		Position:   payload.Position,
		Manager:    payload.Manager,
		HireDate:   payload.HireDate,
		Salary:     payload.Salary,
		Status:     status,
		Location:   payload.Location,
	})
	if err != nil {
		if errors.Is(err, employees.ErrDuplicateEmployeeID) {
			api.BusinessRule(w, "Employee ID already exists")
			return
		}
		api.ServerError(w, err.Error(), false)
		return
	}
	api.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	var payload employees.Update
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	if payload.FirstName != nil {
		v.Required("firstName", *payload.FirstName, "must not be empty")
	}
	if payload.LastName != nil {
		v.Required("lastName", *payload.LastName, "must not be empty")
	}
	if payload.Email != nil {
		v.Email("email", *payload.Email, "must be a valid email address")
	}
	if payload.Status != nil {
		v.Enum("status", *payload.Status, employees.Statuses, "must be one of active, inactive, terminated")
	}
	if v.Reject(w) {
		return
	}

	emp, err := h.Store.Update(id, payload)
	if err != nil {
		api.NotFound(w, "Employee not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Store.Delete(id); err != nil {
		api.NotFound(w, "Employee not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
