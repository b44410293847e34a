package appointment

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/go-chi/chi/v5"
)

// Handler exposes appointment HTTP endpoints, gated on the appointments
// resource.
type Handler struct {
	service Service
	policy  *rbac.Policy
}

func NewHandler(service Service, policy *rbac.Policy) *Handler {
	return &Handler{service: service, policy: policy}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/appointments", func(r chi.Router) {
		r.With(rbac.Require(h.policy, rbac.ResourceAppointments, rbac.OpRead)).Get("/", h.listAppointments)
		r.With(rbac.Require(h.policy, rbac.ResourceAppointments, rbac.OpWrite)).Post("/", h.createAppointment)
		r.With(rbac.Require(h.policy, rbac.ResourceAppointments, rbac.OpDelete)).Delete("/{id}", h.deleteAppointment)
	})
}

func (h *Handler) createAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	a, err := h.service.CreateAppointment(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, a)
}

func (h *Handler) listAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.ListAppointments(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if appointments == nil {
		appointments = []*Appointment{}
	}
	respond(w, http.StatusOK, appointments)
}

func (h *Handler) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAppointment(r.Context(), chi.URLParam(r, "id")); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
