package repair

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	repairs map[string]*Repair
}

func newMemRepo() *memRepo { return &memRepo{repairs: make(map[string]*Repair)} }

func (m *memRepo) CreateRepair(_ context.Context, rep *Repair) error {
	m.repairs[rep.ID.String()] = rep
	return nil
}

func (m *memRepo) GetRepairByID(_ context.Context, id string) (*Repair, error) {
	rep, ok := m.repairs[id]
	if !ok {
		return nil, nil
	}
	return rep, nil
}

func (m *memRepo) ListRepairs(_ context.Context, search, status string) ([]*Repair, error) {
	var out []*Repair
	for _, rep := range m.repairs {
		if search != "" && !strings.Contains(strings.ToLower(rep.DeviceName), strings.ToLower(search)) {
			continue
		}
		if status != "" && string(rep.Status) != status {
			continue
		}
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) UpdateRepair(_ context.Context, rep *Repair) error {
	m.repairs[rep.ID.String()] = rep
	return nil
}

func (m *memRepo) DeleteRepair(_ context.Context, id string) error {
	delete(m.repairs, id)
	return nil
}

// newRouter builds the repair routes behind a middleware that stamps every
// request with the given role, standing in for the auth layer.
func newRouter(svc Service, role rbac.Role) *chi.Mux {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(rbac.WithRole(r.Context(), role)))
		})
	})
	NewHandler(svc, rbac.NewPolicy()).RegisterRoutes(router)
	return router
}

func seedRepair(t *testing.T, svc Service) *Repair {
	t.Helper()
	rep, err := svc.CreateRepair(context.Background(), CreateRepairRequest{
		DeviceName:       "MacBook Pro M1",
		SerialNumber:     "C02XXXXX",
		IssueDescription: "Screen flickering",
		Status:           "In Repair",
		TechnicianID:     "tech",
	})
	require.NoError(t, err)
	return rep
}

func doPut(router *chi.Mux, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateRepair_TechnicianAllowedFields(t *testing.T) {
	svc := NewService(newMemRepo())
	rep := seedRepair(t, svc)
	router := newRouter(svc, rbac.RoleTechnician)

	rec := doPut(router, "/api/repairs/"+rep.ID.String(),
		`{"status":"Completed","technician_notes":"Replaced display cable"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got Repair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "Replaced display cable", got.TechnicianNotes)
}

func TestUpdateRepair_TechnicianBlockedFields(t *testing.T) {
	svc := NewService(newMemRepo())
	rep := seedRepair(t, svc)
	router := newRouter(svc, rbac.RoleTechnician)

	bodies := []string{
		`{"amount":5000}`,
		`{"device_name":"Other Laptop"}`,
		`{"status":"Completed","serial_number":"HACKED"}`,
		`{"technician_id":"someone-else"}`,
	}
	for _, body := range bodies {
		rec := doPut(router, "/api/repairs/"+rep.ID.String(), body)
		assert.Equalf(t, http.StatusForbidden, rec.Code, "body %s", body)
	}

	// Nothing got through.
	got, err := svc.GetRepair(context.Background(), rep.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro M1", got.DeviceName)
	assert.Equal(t, "C02XXXXX", got.SerialNumber)
	assert.Equal(t, int64(0), got.Amount)
	assert.Equal(t, StatusInRepair, got.Status)
}

func TestUpdateRepair_ManagerUnrestricted(t *testing.T) {
	svc := NewService(newMemRepo())
	rep := seedRepair(t, svc)
	router := newRouter(svc, rbac.RoleManager)

	rec := doPut(router, "/api/repairs/"+rep.ID.String(),
		`{"device_name":"MacBook Pro M2","amount":12500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got, err := svc.GetRepair(context.Background(), rep.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro M2", got.DeviceName)
	assert.Equal(t, int64(12500), got.Amount)
}

func TestUpdateRepair_UnknownFieldRejected(t *testing.T) {
	svc := NewService(newMemRepo())
	rep := seedRepair(t, svc)
	router := newRouter(svc, rbac.RoleAdmin)

	rec := doPut(router, "/api/repairs/"+rep.ID.String(), `{"priority":"high"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRepairRoutes_ResourceGate(t *testing.T) {
	svc := NewService(newMemRepo())
	rep := seedRepair(t, svc)

	// Sales has no repairs access at all.
	router := newRouter(svc, rbac.RoleSales)
	req := httptest.NewRequest(http.MethodGet, "/api/repairs/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Technician may write but never delete.
	router = newRouter(svc, rbac.RoleTechnician)
	req = httptest.NewRequest(http.MethodDelete, "/api/repairs/"+rep.ID.String(), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateRepair_Validation(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.CreateRepair(context.Background(), CreateRepairRequest{})
	assert.ErrorContains(t, err, "device_name")

	_, err = svc.CreateRepair(context.Background(), CreateRepairRequest{DeviceName: "x", Status: "Broken"})
	assert.ErrorContains(t, err, "invalid status")

	rep, err := svc.CreateRepair(context.Background(), CreateRepairRequest{DeviceName: "x"})
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, rep.Status)
}
