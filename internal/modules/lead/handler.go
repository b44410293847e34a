package lead

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/go-chi/chi/v5"
)

// Handler exposes lead HTTP endpoints, gated on the leads resource.
type Handler struct {
	service Service
	policy  *rbac.Policy
}

func NewHandler(service Service, policy *rbac.Policy) *Handler {
	return &Handler{service: service, policy: policy}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/leads", func(r chi.Router) {
		r.With(rbac.Require(h.policy, rbac.ResourceLeads, rbac.OpRead)).Get("/", h.listLeads)
		r.With(rbac.Require(h.policy, rbac.ResourceLeads, rbac.OpRead)).Get("/{id}", h.getLead)
		r.With(rbac.Require(h.policy, rbac.ResourceLeads, rbac.OpWrite)).Post("/", h.createLead)
		r.With(rbac.Require(h.policy, rbac.ResourceLeads, rbac.OpWrite)).Put("/{id}", h.updateLead)
		r.With(rbac.Require(h.policy, rbac.ResourceLeads, rbac.OpWrite)).Post("/{id}/convert", h.convertLead)
		r.With(rbac.Require(h.policy, rbac.ResourceLeads, rbac.OpDelete)).Delete("/{id}", h.deleteLead)
	})
}

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	var req UpsertLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	l, err := h.service.CreateLead(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, l)
}

func (h *Handler) getLead(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.GetLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, l)
}

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.service.ListLeads(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if leads == nil {
		leads = []*Lead{}
	}
	respond(w, http.StatusOK, leads)
}

func (h *Handler) updateLead(w http.ResponseWriter, r *http.Request) {
	var req UpsertLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	l, err := h.service.UpdateLead(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, l)
}

func (h *Handler) convertLead(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ConvertLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, result)
}

func (h *Handler) deleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLead(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
