package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
)

// Handler exposes the dashboard HTTP endpoints.
type Handler struct {
	service Service
	policy  *rbac.Policy
}

// NewHandler creates a new dashboard handler.
func NewHandler(service Service, policy *rbac.Policy) *Handler {
	return &Handler{service: service, policy: policy}
}

// RegisterRoutes registers dashboard routes on the router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/dashboard", func(r chi.Router) {
		r.With(rbac.Require(h.policy, rbac.ResourceAnalytics, rbac.OpRead)).Get("/stats", h.getStats)
	})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to load dashboard stats"})
		return
	}
	respond(w, http.StatusOK, stats)
}

func respond(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
