package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"comanda/internal/config"
	"comanda/internal/handler"
	"comanda/internal/mw"
	"comanda/internal/service"
	"comanda/internal/storage"
	"comanda/internal/store"
	"comanda/internal/worker"
)

func main() {
	cfg := config.New()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		slog.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}

	st := store.New(
		storage.NewFile(filepath.Join(cfg.DataDir, "pending.json")),
		storage.NewFile(filepath.Join(cfg.DataDir, "payments.json")),
		storage.NewFile(filepath.Join(cfg.DataDir, "waiters.json")),
	)

	// Notifier
	var notifier *worker.SheetNotifier
	var orderNotifier service.OrderNotifier
	if cfg.SheetWebhookURL != "" {
		notifier = worker.NewSheetNotifier(cfg.SheetWebhookURL)
		orderNotifier = notifier
	}

	// Services
	orderSvc := service.NewOrderService(st, orderNotifier)
	paymentSvc := service.NewPaymentService(st, cfg.Merchant)
	authSvc := service.NewAuthService(st)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Post("/api/waiters/register", handler.RegisterHandler(authSvc, cfg.JWTSecret))
	r.Post("/api/waiters/login", handler.LoginHandler(authSvc, cfg.JWTSecret))

	r.Get("/api/pending", handler.ListOrdersHandler(orderSvc))
	r.Post("/api/pending", handler.CreateOrderHandler(orderSvc))
	r.Post("/api/checkout", handler.CheckoutHandler(paymentSvc))
	r.Post("/api/payments/{paymentID}/paid", handler.MarkPaidHandler(paymentSvc))
	r.Get("/pay/qr/{paymentID}", handler.PaymentPageHandler(paymentSvc))
	r.Get("/qr", handler.QRImageHandler())

	// Waitstaff routes
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/api/pending/{orderID}/delivered", handler.DeliverOrderHandler(orderSvc))
		r.Get("/api/payments", handler.ListPaymentsHandler(paymentSvc))
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	if notifier != nil {
		go notifier.Start(ctx)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop notifier
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
