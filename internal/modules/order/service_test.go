package order

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory Repository. Stock mutation is serialized by a
// mutex; each line is a conditional decrement, and a failed line restores
// every decrement already applied for that order.
type memRepo struct {
	mu        sync.Mutex
	customers map[string]*CustomerInfo
	products  map[string]*ProductInfo
	orders    map[string]*Order

	// beforeCreate, when set, runs at the start of CreateOrder. Tests use
	// it to simulate a competing order committing between the service's
	// stock pre-check and the commit.
	beforeCreate func()
}

func newMemRepo() *memRepo {
	return &memRepo{
		customers: make(map[string]*CustomerInfo),
		products:  make(map[string]*ProductInfo),
		orders:    make(map[string]*Order),
	}
}

func (m *memRepo) addCustomer(name string) uuid.UUID {
	id := uuid.New()
	m.customers[id.String()] = &CustomerInfo{ID: id, Name: name}
	return id
}

func (m *memRepo) addProduct(name string, price int64, stock int) uuid.UUID {
	id := uuid.New()
	m.products[id.String()] = &ProductInfo{ID: id, Name: name, Price: price, Stock: stock}
	return id
}

func (m *memRepo) stock(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id.String()].Stock
}

func (m *memRepo) GetProduct(_ context.Context, id string) (*ProductInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) CustomerExists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.customers[id]
	return ok, nil
}

func (m *memRepo) GetCustomer(_ context.Context, id string) (*CustomerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) CreateOrder(_ context.Context, o *Order) error {
	if m.beforeCreate != nil {
		m.beforeCreate()
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	applied := make([]*OrderItem, 0, len(o.Items))
	rollback := func() {
		for _, it := range applied {
			m.products[it.ProductID.String()].Stock += it.Quantity
		}
	}
	for _, it := range o.Items {
		p, ok := m.products[it.ProductID.String()]
		if !ok {
			rollback()
			return &NotFoundError{Kind: "product", ID: it.ProductID.String()}
		}
		if p.Stock < it.Quantity {
			rollback()
			return &InsufficientStockError{
				ProductID:   p.ID.String(),
				ProductName: p.Name,
				Requested:   it.Quantity,
				Available:   p.Stock,
			}
		}
		p.Stock -= it.Quantity
		applied = append(applied, it)
	}
	m.orders[o.ID.String()] = o
	return nil
}

func (m *memRepo) GetOrderByID(_ context.Context, id string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (m *memRepo) ListOrders(_ context.Context) ([]*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := make([]*Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func request(customerID uuid.UUID, items ...LineItem) PlaceOrderRequest {
	return PlaceOrderRequest{CustomerID: customerID.String(), Items: items}
}

func line(productID uuid.UUID, qty int) LineItem {
	return LineItem{ProductID: productID.String(), Quantity: qty}
}

func TestPlaceOrder_Success(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("iPhone 15 Pro Case", 4999, 3)

	o, err := svc.PlaceOrder(context.Background(), request(customerID, line(productID, 2)))

	require.NoError(t, err)
	assert.Equal(t, customerID, o.CustomerID)
	assert.Equal(t, int64(9998), o.Total)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.False(t, o.CreatedAt.IsZero())
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.Equal(t, int64(4999), o.Items[0].UnitPrice)
	assert.Equal(t, 1, repo.stock(productID))
}

func TestPlaceOrder_PaymentStatus(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("Screen Protector", 1999, 10)

	req := request(customerID, line(productID, 1))
	req.PaymentStatus = "Paid"
	o, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, o.PaymentStatus)

	req = request(customerID, line(productID, 1))
	req.PaymentStatus = "Refunded"
	_, err = svc.PlaceOrder(context.Background(), req)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestPlaceOrder_Validation(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("Charging Cable", 2999, 4)

	tests := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"empty items", request(customerID)},
		{"zero quantity", request(customerID, line(productID, 0))},
		{"negative quantity", request(customerID, line(productID, -3))},
		{"malformed customer id", PlaceOrderRequest{CustomerID: "not-a-uuid", Items: []LineItem{line(productID, 1)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(context.Background(), tc.req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, 4, repo.stock(productID))
			assert.Empty(t, repo.orders)
		})
	}
}

func TestPlaceOrder_UnknownCustomer(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	productID := repo.addProduct("Charging Cable", 2999, 4)

	_, err := svc.PlaceOrder(context.Background(), request(uuid.New(), line(productID, 1)))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "customer", nf.Kind)
	assert.Equal(t, 4, repo.stock(productID))
	assert.Empty(t, repo.orders)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("Jane Smith")

	_, err := svc.PlaceOrder(context.Background(), request(customerID, LineItem{ProductID: uuid.New().String(), Quantity: 1}))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Kind)
	assert.Empty(t, repo.orders)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("Charging Cable", 2999, 1)

	_, err := svc.PlaceOrder(context.Background(), request(customerID, line(productID, 5)))

	var is *InsufficientStockError
	require.ErrorAs(t, err, &is)
	assert.Equal(t, "Charging Cable", is.ProductName)
	assert.Equal(t, 5, is.Requested)
	assert.Equal(t, 1, is.Available)
	assert.Equal(t, 1, repo.stock(productID))
	assert.Empty(t, repo.orders)
}

// A failing line must leave every other line's product untouched.
func TestPlaceOrder_MultiLineAllOrNothing(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	plentiful := repo.addProduct("Screen Protector", 1999, 100)
	scarce := repo.addProduct("Charging Cable", 2999, 1)

	_, err := svc.PlaceOrder(context.Background(),
		request(customerID, line(plentiful, 2), line(scarce, 3)))

	var is *InsufficientStockError
	require.ErrorAs(t, err, &is)
	assert.Equal(t, 100, repo.stock(plentiful))
	assert.Equal(t, 1, repo.stock(scarce))
	assert.Empty(t, repo.orders)
}

// Two lines naming the same product must be checked against the running
// balance, not each against the starting stock.
func TestPlaceOrder_DuplicateLinesCannotOversell(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("Charging Cable", 2999, 3)

	_, err := svc.PlaceOrder(context.Background(),
		request(customerID, line(productID, 2), line(productID, 2)))

	var is *InsufficientStockError
	require.ErrorAs(t, err, &is)
	assert.Equal(t, 3, repo.stock(productID))
	assert.Empty(t, repo.orders)
}

// A competing order committing after the service's pre-check must fail this
// order at commit time, with no order record and no decrement from it.
func TestPlaceOrder_RaceLostAtCommit(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("Charging Cable", 2999, 3)

	won := false
	repo.beforeCreate = func() {
		if !won {
			won = true
			repo.mu.Lock()
			repo.products[productID.String()].Stock -= 2
			repo.mu.Unlock()
		}
	}

	_, err := svc.PlaceOrder(context.Background(), request(customerID, line(productID, 2)))

	var is *InsufficientStockError
	require.ErrorAs(t, err, &is)
	assert.Equal(t, 1, is.Available)
	assert.Equal(t, 1, repo.stock(productID))
	assert.Empty(t, repo.orders)
}

// Concurrent orders against one product: aggregate sold quantity never
// exceeds starting stock and stock never goes negative.
func TestPlaceOrder_ConcurrentNoOversell(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("Screen Protector", 1999, 7)

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(context.Background(), request(customerID, line(productID, 2)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			var is *InsufficientStockError
			require.ErrorAs(t, err, &is)
		}
	}
	assert.Equal(t, 3, succeeded, "7 units serve exactly three orders of 2")
	assert.Equal(t, 1, repo.stock(productID))
	assert.Len(t, repo.orders, succeeded)
}

func TestPlaceOrder_TwoConcurrentOrdersOneWins(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("John Doe")
	productID := repo.addProduct("Screen Protector", 1999, 3)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(context.Background(), request(customerID, line(productID, 2)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, repo.stock(productID))
}

// Changing the catalog price after the sale must not change the stored
// total or the historical unit price; the invoice shows both side by side.
func TestGetInvoice_PriceSnapshot(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("Jane Smith")
	productID := repo.addProduct("iPhone 15 Pro Case", 100, 10)

	o, err := svc.PlaceOrder(context.Background(), request(customerID, line(productID, 2)))
	require.NoError(t, err)
	require.Equal(t, int64(200), o.Total)

	repo.mu.Lock()
	repo.products[productID.String()].Price = 150
	repo.mu.Unlock()

	inv, err := svc.GetInvoice(context.Background(), o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(200), inv.Total)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, int64(100), inv.Items[0].UnitPrice)
	require.NotNil(t, inv.Items[0].Product)
	assert.Equal(t, int64(150), inv.Items[0].Product.Price)
	require.NotNil(t, inv.Customer)
	assert.Equal(t, "Jane Smith", inv.Customer.Name)
}

func TestGetInvoice_DeletedReferences(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	customerID := repo.addCustomer("Jane Smith")
	productID := repo.addProduct("Screen Protector", 1999, 5)

	o, err := svc.PlaceOrder(context.Background(), request(customerID, line(productID, 1)))
	require.NoError(t, err)

	repo.mu.Lock()
	delete(repo.products, productID.String())
	delete(repo.customers, customerID.String())
	repo.mu.Unlock()

	inv, err := svc.GetInvoice(context.Background(), o.ID.String())
	require.NoError(t, err)
	assert.Nil(t, inv.Customer)
	require.Len(t, inv.Items, 1)
	assert.Nil(t, inv.Items[0].Product)
	assert.Equal(t, int64(1999), inv.Items[0].UnitPrice)
}

func TestGetInvoice_NotFound(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	_, err := svc.GetInvoice(context.Background(), uuid.New().String())
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "order", nf.Kind)

	_, err = svc.GetInvoice(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &nf)
}
