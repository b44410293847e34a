package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/go-chi/chi/v5"
)

// Handler exposes product HTTP endpoints, gated on the inventory resource.
type Handler struct {
	service Service
	policy  *rbac.Policy
}

func NewHandler(service Service, policy *rbac.Policy) *Handler {
	return &Handler{service: service, policy: policy}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/products", func(r chi.Router) {
		r.With(rbac.Require(h.policy, rbac.ResourceInventory, rbac.OpRead)).Get("/", h.listProducts)
		r.With(rbac.Require(h.policy, rbac.ResourceInventory, rbac.OpRead)).Get("/{id}", h.getProduct)
		r.With(rbac.Require(h.policy, rbac.ResourceInventory, rbac.OpWrite)).Post("/", h.createProduct)
		r.With(rbac.Require(h.policy, rbac.ResourceInventory, rbac.OpWrite)).Put("/{id}", h.updateProduct)
		r.With(rbac.Require(h.policy, rbac.ResourceInventory, rbac.OpDelete)).Delete("/{id}", h.deleteProduct)
	})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	lowStock := r.URL.Query().Get("lowStock") == "true"
	products, err := h.service.ListProducts(r.Context(), search, lowStock)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if products == nil {
		products = []*Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
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
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"),
		strings.Contains(msg, "negative"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
