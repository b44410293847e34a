package customer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	customers map[uuid.UUID]*Customer
}

func newMemRepo() *memRepo {
	return &memRepo{customers: map[uuid.UUID]*Customer{}}
}

func (m *memRepo) CreateCustomer(ctx context.Context, c *Customer) error {
	cp := *c
	m.customers[c.ID] = &cp
	return nil
}

func (m *memRepo) GetCustomerByID(ctx context.Context, id string) (*Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	c, ok := m.customers[uid]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) ListCustomers(ctx context.Context, search string) ([]*Customer, error) {
	var out []*Customer
	for _, c := range m.customers {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepo) UpdateCustomer(ctx context.Context, c *Customer) error {
	cp := *c
	m.customers[c.ID] = &cp
	return nil
}

func (m *memRepo) DeleteCustomer(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(m.customers, uid)
	return nil
}

func TestCreateCustomer_DefaultsToNewSegment(t *testing.T) {
	svc := NewService(newMemRepo())

	c, err := svc.CreateCustomer(context.Background(), UpsertCustomerRequest{Name: "John Smith"})
	require.NoError(t, err)

	assert.Equal(t, SegmentNew, c.Segment)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestCreateCustomer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     UpsertCustomerRequest
		wantErr string
	}{
		{"missing name", UpsertCustomerRequest{}, "name is required"},
		{"bad segment", UpsertCustomerRequest{Name: "A", Segment: "Platinum"}, "invalid segment"},
	}
	svc := NewService(newMemRepo())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCustomer(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpdateCustomer_KeepsSegmentWhenOmitted(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	c, err := svc.CreateCustomer(context.Background(), UpsertCustomerRequest{Name: "Maria", Segment: string(SegmentVIP)})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(context.Background(), c.ID.String(), UpsertCustomerRequest{
		Name:  "Maria Garcia",
		Phone: "555-0102",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Garcia", updated.Name)
	assert.Equal(t, SegmentVIP, updated.Segment)
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.GetCustomer(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteCustomer_InvalidID(t *testing.T) {
	svc := NewService(newMemRepo())

	err := svc.DeleteCustomer(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid customer id")
}

func TestListCustomers_Search(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	_, err := svc.CreateCustomer(context.Background(), UpsertCustomerRequest{Name: "John Smith"})
	require.NoError(t, err)
	_, err = svc.CreateCustomer(context.Background(), UpsertCustomerRequest{Name: "Maria Garcia"})
	require.NoError(t, err)

	got, err := svc.ListCustomers(context.Background(), "garcia")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Maria Garcia", got[0].Name)
}
