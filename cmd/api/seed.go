package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/crm-backend/internal/modules/appointment"
	"github.com/georgemunganga/crm-backend/internal/modules/catalog"
	"github.com/georgemunganga/crm-backend/internal/modules/customer"
	"github.com/georgemunganga/crm-backend/internal/modules/lead"
	"github.com/georgemunganga/crm-backend/internal/modules/order"
	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/georgemunganga/crm-backend/internal/modules/repair"
	"github.com/georgemunganga/crm-backend/internal/modules/user"
)

// seeder loads demo accounts and sample records into an empty database.
// It goes through the services so the demo order is priced and stock is
// decremented the same way a live request would be.
type seeder struct {
	users        user.Repository
	customers    customer.Service
	products     catalog.Service
	repairs      repair.Service
	leads        lead.Service
	appointments appointment.Service
	orders       order.Service
}

func (s *seeder) Run() error {
	ctx := context.Background()

	n, err := s.users.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	log.Println("empty database, seeding demo data")

	// One login per role, all with the password "password".
	demoCustomer, err := s.customers.CreateCustomer(ctx, customer.UpsertCustomerRequest{
		Name:    "John Smith",
		Phone:   "555-0101",
		Email:   "john.smith@example.com",
		Segment: string(customer.SegmentRepeat),
	})
	if err != nil {
		return fmt.Errorf("seed: customer: %w", err)
	}
	walkIn, err := s.customers.CreateCustomer(ctx, customer.UpsertCustomerRequest{
		Name:  "Maria Garcia",
		Phone: "555-0102",
		Notes: "Walk-in, asked about trade-ins",
	})
	if err != nil {
		return fmt.Errorf("seed: customer: %w", err)
	}

	accounts := []struct {
		username   string
		role       rbac.Role
		customerID *uuid.UUID
	}{
		{"admin", rbac.RoleAdmin, nil},
		{"manager", rbac.RoleManager, nil},
		{"salesman", rbac.RoleSales, nil},
		{"tech", rbac.RoleTechnician, nil},
		{"customer", rbac.RoleCustomer, &demoCustomer.ID},
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}
	for _, a := range accounts {
		u := &user.User{
			ID:           uuid.New(),
			Username:     a.username,
			PasswordHash: string(hash),
			Role:         string(a.role),
			CustomerID:   a.customerID,
		}
		if err := s.users.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seed: user %s: %w", a.username, err)
		}
	}

	caseProduct, err := s.products.CreateProduct(ctx, catalog.CreateProductRequest{
		Name: "iPhone 15 Pro Case", Category: "Accessories", Price: 4999, Stock: 50, Supplier: "CasePro Ltd",
	})
	if err != nil {
		return fmt.Errorf("seed: product: %w", err)
	}
	if _, err := s.products.CreateProduct(ctx, catalog.CreateProductRequest{
		Name: "Screen Protector", Category: "Accessories", Price: 1999, Stock: 100, Supplier: "GlassGuard",
	}); err != nil {
		return fmt.Errorf("seed: product: %w", err)
	}
	if _, err := s.products.CreateProduct(ctx, catalog.CreateProductRequest{
		Name: "Charging Cable", Category: "Accessories", Price: 2999, Stock: 4, Supplier: "VoltWorks",
	}); err != nil {
		return fmt.Errorf("seed: product: %w", err)
	}

	if _, err := s.repairs.CreateRepair(ctx, repair.CreateRepairRequest{
		DeviceName:       "iPhone 14",
		SerialNumber:     "F2LX1234ABCD",
		IssueDescription: "Cracked screen, touch unresponsive in lower third",
		Status:           string(repair.StatusDiagnosing),
		TechnicianID:     "tech",
		Amount:           12900,
		CustomerID:       walkIn.ID.String(),
	}); err != nil {
		return fmt.Errorf("seed: repair: %w", err)
	}

	if _, err := s.leads.CreateLead(ctx, lead.UpsertLeadRequest{
		Name:              "Alex Chen",
		Phone:             "555-0199",
		Interest:          "Refurbished MacBook",
		CallbackRequested: true,
	}); err != nil {
		return fmt.Errorf("seed: lead: %w", err)
	}

	if _, err := s.appointments.CreateAppointment(ctx, appointment.CreateAppointmentRequest{
		CustomerName: demoCustomer.Name,
		Date:         time.Now().UTC().AddDate(0, 0, 2),
		Time:         "10:30",
		Purpose:      "Pick up repaired device",
		StaffID:      "manager",
	}); err != nil {
		return fmt.Errorf("seed: appointment: %w", err)
	}

	if _, err := s.orders.PlaceOrder(ctx, order.PlaceOrderRequest{
		CustomerID: demoCustomer.ID.String(),
		Items: []order.LineItem{
			{ProductID: caseProduct.ID.String(), Quantity: 1},
		},
		PaymentStatus: string(order.PaymentPaid),
	}); err != nil {
		return fmt.Errorf("seed: order: %w", err)
	}

	log.Println("seeding complete")
	return nil
}
