package customer

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/go-chi/chi/v5"
)

// Handler exposes customer HTTP endpoints, gated on the customers resource.
type Handler struct {
	service Service
	policy  *rbac.Policy
}

func NewHandler(service Service, policy *rbac.Policy) *Handler {
	return &Handler{service: service, policy: policy}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/customers", func(r chi.Router) {
		r.With(rbac.Require(h.policy, rbac.ResourceCustomers, rbac.OpRead)).Get("/", h.listCustomers)
		r.With(rbac.Require(h.policy, rbac.ResourceCustomers, rbac.OpRead)).Get("/{id}", h.getCustomer)
		r.With(rbac.Require(h.policy, rbac.ResourceCustomers, rbac.OpWrite)).Post("/", h.createCustomer)
		r.With(rbac.Require(h.policy, rbac.ResourceCustomers, rbac.OpWrite)).Put("/{id}", h.updateCustomer)
		r.With(rbac.Require(h.policy, rbac.ResourceCustomers, rbac.OpDelete)).Delete("/{id}", h.deleteCustomer)
	})
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req UpsertCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.CreateCustomer(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, c)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if customers == nil {
		customers = []*Customer{}
	}
	respond(w, http.StatusOK, customers)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var req UpsertCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
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
