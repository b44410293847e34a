package catalog

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	products map[string]*Product
}

func newMemRepo() *memRepo {
	return &memRepo{products: make(map[string]*Product)}
}

func (m *memRepo) CreateProduct(_ context.Context, p *Product) error {
	m.products[p.ID.String()] = p
	return nil
}

func (m *memRepo) GetProductByID(_ context.Context, id string) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (m *memRepo) ListProducts(_ context.Context, search string, lowStock bool) ([]*Product, error) {
	var out []*Product
	for _, p := range m.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		if lowStock && p.Stock >= lowStockThreshold {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) UpdateProduct(_ context.Context, p *Product) error {
	m.products[p.ID.String()] = p
	return nil
}

func (m *memRepo) DeleteProduct(_ context.Context, id string) error {
	delete(m.products, id)
	return nil
}

func TestCreateProduct(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "iPhone 15 Pro Case", Category: "Accessories", Price: 4999, Stock: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4999), p.Price)
	assert.Equal(t, 50, p.Stock)

	tests := []struct {
		name string
		req  CreateProductRequest
	}{
		{"missing name", CreateProductRequest{Price: 100, Stock: 1}},
		{"negative price", CreateProductRequest{Name: "x", Price: -1, Stock: 1}},
		{"negative stock", CreateProductRequest{Name: "x", Price: 100, Stock: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name: "Charging Cable", Category: "Cables", Price: 2999, Stock: 4,
	})
	require.NoError(t, err)

	price := int64(3499)
	updated, err := svc.UpdateProduct(context.Background(), p.ID.String(), UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(3499), updated.Price)
	assert.Equal(t, "Charging Cable", updated.Name)
	assert.Equal(t, 4, updated.Stock)

	negative := -3
	_, err = svc.UpdateProduct(context.Background(), p.ID.String(), UpdateProductRequest{Stock: &negative})
	assert.Error(t, err)
}

func TestListProducts_LowStockFilter(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	_, err := svc.CreateProduct(context.Background(), CreateProductRequest{Name: "Screen Protector", Price: 1999, Stock: 100})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), CreateProductRequest{Name: "Charging Cable", Price: 2999, Stock: 4})
	require.NoError(t, err)

	low, err := svc.ListProducts(context.Background(), "", true)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Charging Cable", low[0].Name)

	all, err := svc.ListProducts(context.Background(), "", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := svc.ListProducts(context.Background(), "screen", false)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Screen Protector", found[0].Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	_, err := svc.GetProduct(context.Background(), "b2c3d4e5-0000-0000-0000-000000000000")
	assert.ErrorContains(t, err, "not found")

	_, err = svc.GetProduct(context.Background(), "nonsense")
	assert.ErrorContains(t, err, "invalid")
}
