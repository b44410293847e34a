package repair

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/go-chi/chi/v5"
)

// fieldNames maps request body keys onto the canonical field names the
// permission policy scopes on.
var fieldNames = map[string]string{
	"device_name":       "deviceName",
	"serial_number":     "serialNumber",
	"imei":              "imei",
	"issue_description": "issueDescription",
	"status":            "status",
	"technician_notes":  "technicianNotes",
	"technician_id":     "technicianId",
	"amount":            "amount",
	"customer_id":       "customerId",
}

// Handler exposes repair HTTP endpoints, gated on the repairs resource.
type Handler struct {
	service Service
	policy  *rbac.Policy
}

func NewHandler(service Service, policy *rbac.Policy) *Handler {
	return &Handler{service: service, policy: policy}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/api/repairs", func(r chi.Router) {
		r.With(rbac.Require(h.policy, rbac.ResourceRepairs, rbac.OpRead)).Get("/", h.listRepairs)
		r.With(rbac.Require(h.policy, rbac.ResourceRepairs, rbac.OpRead)).Get("/{id}", h.getRepair)
		r.With(rbac.Require(h.policy, rbac.ResourceRepairs, rbac.OpWrite)).Post("/", h.createRepair)
		r.With(rbac.Require(h.policy, rbac.ResourceRepairs, rbac.OpWrite)).Put("/{id}", h.updateRepair)
		r.With(rbac.Require(h.policy, rbac.ResourceRepairs, rbac.OpDelete)).Delete("/{id}", h.deleteRepair)
	})
}

func (h *Handler) createRepair(w http.ResponseWriter, r *http.Request) {
	var req CreateRepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rep, err := h.service.CreateRepair(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, rep)
}

func (h *Handler) getRepair(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.GetRepair(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rep)
}

func (h *Handler) listRepairs(w http.ResponseWriter, r *http.Request) {
	repairs, err := h.service.ListRepairs(r.Context(),
		r.URL.Query().Get("search"), r.URL.Query().Get("status"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if repairs == nil {
		repairs = []*Repair{}
	}
	respond(w, http.StatusOK, repairs)
}

// updateRepair enforces field-level write scope server-side: every field
// present in the body is checked against the caller's role, so a client
// cannot smuggle fields the policy denies.
func (h *Handler) updateRepair(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var touched map[string]json.RawMessage
	if err := json.Unmarshal(body, &touched); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	role, _ := rbac.RoleFromContext(r.Context())
	for key := range touched {
		field, known := fieldNames[key]
		if !known {
			respond(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown field %q", key)})
			return
		}
		if !h.policy.CanEditField(role, rbac.ResourceRepairs, field) {
			respond(w, http.StatusForbidden, map[string]string{"error": fmt.Sprintf("role %s may not edit field %q", role, key)})
			return
		}
	}

	var req UpdateRepairRequest
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rep, err := h.service.UpdateRepair(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rep)
}

func (h *Handler) deleteRepair(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRepair(r.Context(), chi.URLParam(r, "id")); err != nil {
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
