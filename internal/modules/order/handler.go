package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints, gated on the sales resource.
type Handler struct {
	service Service
	policy  *rbac.Policy
}

func NewHandler(service Service, policy *rbac.Policy) *Handler {
	return &Handler{service: service, policy: policy}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/orders", func(r chi.Router) {
		r.With(rbac.Require(h.policy, rbac.ResourceSales, rbac.OpRead)).Get("/", h.listOrders)
		r.With(rbac.Require(h.policy, rbac.ResourceSales, rbac.OpWrite)).Post("/", h.placeOrder)
		r.With(rbac.Require(h.policy, rbac.ResourceSales, rbac.OpRead)).Get("/{id}/invoice", h.getInvoice)
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.service.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, inv)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}
	respond(w, http.StatusOK, orders)
}

func statusFor(err error) int {
	var nf *NotFoundError
	var ve *ValidationError
	var is *InsufficientStockError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &is):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
