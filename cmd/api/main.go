package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/georgemunganga/crm-backend/internal/database"
	"github.com/georgemunganga/crm-backend/internal/modules/appointment"
	"github.com/georgemunganga/crm-backend/internal/modules/auth"
	"github.com/georgemunganga/crm-backend/internal/modules/catalog"
	"github.com/georgemunganga/crm-backend/internal/modules/customer"
	"github.com/georgemunganga/crm-backend/internal/modules/dashboard"
	"github.com/georgemunganga/crm-backend/internal/modules/lead"
	"github.com/georgemunganga/crm-backend/internal/modules/order"
	"github.com/georgemunganga/crm-backend/internal/modules/rbac"
	"github.com/georgemunganga/crm-backend/internal/modules/repair"
	"github.com/georgemunganga/crm-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	policy := rbac.NewPolicy()

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	authService := auth.NewService(userRepo, []byte(secret))
	auth.NewHandler(authService).RegisterRoutes(router)

	authMiddleware := auth.NewMiddleware([]byte(secret))

	// ── Domain services ─────────────────────────────────────
	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)

	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)

	repairRepo := repair.NewPostgresRepository(db)
	repairService := repair.NewService(repairRepo)

	leadRepo := lead.NewPostgresRepository(db)
	leadService := lead.NewService(leadRepo, customerService)

	appointmentRepo := appointment.NewPostgresRepository(db)
	appointmentService := appointment.NewService(appointmentRepo)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)

	dashboardRepo := dashboard.NewPostgresRepository(db)
	dashboardService := dashboard.NewService(dashboardRepo)

	// ── Authenticated surface ───────────────────────────────
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		customer.NewHandler(customerService, policy).RegisterRoutes(r)
		catalog.NewHandler(catalogService, policy).RegisterRoutes(r)
		repair.NewHandler(repairService, policy).RegisterRoutes(r)
		lead.NewHandler(leadService, policy).RegisterRoutes(r)
		appointment.NewHandler(appointmentService, policy).RegisterRoutes(r)
		order.NewHandler(orderService, policy).RegisterRoutes(r)
		dashboard.NewHandler(dashboardService, policy).RegisterRoutes(r)
	})

	// ── Demo data ───────────────────────────────────────────
	seeder := &seeder{
		users:        userRepo,
		customers:    customerService,
		products:     catalogService,
		repairs:      repairService,
		leads:        leadService,
		appointments: appointmentService,
		orders:       orderService,
	}
	if err := seeder.Run(); err != nil {
		log.Fatal(err)
	}

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("CRM API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
