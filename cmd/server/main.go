package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digital-storefront/internal/config"
	"digital-storefront/internal/handlers"
	"digital-storefront/internal/middleware"
	"digital-storefront/internal/repository"
	"digital-storefront/internal/service"
	"digital-storefront/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting digital storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"database", cfg.Mongo.Database,
		"log_level", cfg.LogLevel,
	)

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repository.Connect(ctx, cfg.Mongo.URL)
	cancel()
	if err != nil {
		log.Error("failed to connect to mongodb", "url", cfg.Mongo.URL, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongodb", "error", err)
		}
	}()

	db := client.Database(cfg.Mongo.Database)

	// Initialize repositories
	productRepo := repository.NewMongoProductRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	// Seed the catalog before accepting traffic
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = repository.SeedProducts(ctx, productRepo, log)
	cancel()
	if err != nil {
		log.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(productRepo, orderRepo)
	paymentService := service.NewPaymentService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	paymentHandler := handlers.NewPaymentHandler(paymentService, log)
	categoryHandler := handlers.NewCategoryHandler(log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", handlers.Root(log))
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{productId}", productHandler.GetProduct)

		r.Get("/categories", categoryHandler.ListCategories)

		r.Post("/orders/create", orderHandler.CreateOrder)
		r.Get("/orders/{orderId}", orderHandler.GetOrder)

		r.Post("/paypal/create-order", paymentHandler.CreatePayPalOrder)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
