package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Snigdah/E-Banking-System/internal/payroll/events"
	"github.com/Snigdah/E-Banking-System/internal/payroll/handler"
	"github.com/Snigdah/E-Banking-System/internal/payroll/repository"
	"github.com/Snigdah/E-Banking-System/internal/payroll/service"
	"github.com/Snigdah/E-Banking-System/pkg/config"
	"github.com/Snigdah/E-Banking-System/pkg/database"
	"github.com/Snigdah/E-Banking-System/pkg/httputil"
	"github.com/Snigdah/E-Banking-System/pkg/logger"
	"github.com/Snigdah/E-Banking-System/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("payroll-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("payroll-service", cfg.Server.Environment)
	log.Info().Msg("starting Payroll Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Connect to RabbitMQ
	rmq, err := messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rmq.Close()

	// Initialize event publisher
	publisher, err := events.NewPayrollEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event publisher")
	}

	// Initialize repositories
	bankRepo := repository.NewBankAccountRepository(db)
	companyRepo := repository.NewCompanyAccountRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	salaryRepo := repository.NewBaseSalaryRepository(db)

	// Initialize services
	bankService := service.NewBankAccountService(bankRepo, log)
	companyService := service.NewCompanyAccountService(companyRepo, publisher, log)
	employeeService := service.NewEmployeeService(db, employeeRepo, bankRepo, salaryRepo, publisher, log)
	salaryService := service.NewSalaryService(salaryRepo, publisher, log)
	transferService := service.NewTransferService(db, companyRepo, bankRepo, employeeRepo, salaryRepo, publisher, log)

	// Initialize handlers
	bankHandler := handler.NewBankAccountHandler(bankService, log)
	companyHandler := handler.NewCompanyAccountHandler(companyService, transferService, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService, log)
	salaryHandler := handler.NewSalaryHandler(salaryService, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "payroll-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/bank-accounts", func(r chi.Router) {
			r.Post("/", bankHandler.Create)
			r.Post("/search", bankHandler.Search)
			r.Get("/", bankHandler.List)
			r.Put("/", bankHandler.Update)
		})

		r.Route("/company-accounts", func(r chi.Router) {
			r.Post("/", companyHandler.Create)
			r.Post("/search", companyHandler.Search)
			r.Get("/", companyHandler.List)
			r.Put("/", companyHandler.Update)
			r.Delete("/delete", companyHandler.Delete)
			r.Post("/add-funds", companyHandler.AddFunds)
			r.Post("/transfer-salary", companyHandler.TransferSalary)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/create", employeeHandler.Create)
			r.Get("/all", employeeHandler.List)
			r.Get("/{employeeId}", employeeHandler.Get)
			r.Put("/{employeeId}", employeeHandler.Update)
			r.Delete("/{employeeId}", employeeHandler.Delete)
		})

		r.Route("/salary", func(r chi.Router) {
			r.Post("/setBaseSalary", salaryHandler.SetBaseSalary)
			r.Get("/getBaseSalary", salaryHandler.GetBaseSalary)
			r.Post("/calculateSalary", salaryHandler.CalculateSalary)
		})
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
