package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/http/handlers"
	mw "github.com/minervatires/site-api/internal/http/middleware"
	"github.com/minervatires/site-api/internal/platform/mailer"
	"github.com/minervatires/site-api/internal/repo/postgres"
	"github.com/minervatires/site-api/internal/service"
	"github.com/minervatires/site-api/pkg/config"
	"github.com/minervatires/site-api/pkg/database"
	"github.com/minervatires/site-api/pkg/logger"
)

func main() {
	// Local development reads .env; deployed environments set real vars.
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database.URL, cfg.Database.MinConns, cfg.Database.MaxConns, cfg.Database.MaxLifetime)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	notifier := buildNotifier(cfg)

	bookingRepo := postgres.NewBookingRepository(pool)
	referenceRepo := postgres.NewReferenceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	bookingService := service.NewBookingService(bookingRepo, cfg.Booking.PhonePrefix)
	contactService := service.NewContactService(notifier, cfg.Email.ShopInbox)
	referenceService := service.NewReferenceService(referenceRepo)
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	bookingHandler := handlers.NewBookingHandler(bookingService)
	contactHandler := handlers.NewContactHandler(contactService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(bookingService)

	formLimiter := mw.NewRateLimiter(pool, cfg.Booking.RateLimit, cfg.Booking.RateLimitWindow)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Public site endpoints.
		r.With(formLimiter.Middleware).Post("/bookings", bookingHandler.Create)
		r.With(formLimiter.Middleware).Post("/contact", contactHandler.Create)
		r.Get("/contact-info", referenceHandler.Get)

		r.Post("/auth/login", authHandler.Login)
		r.With(mw.RequireSession(cfg.Auth.JWTSecret)).Get("/session/nav", authHandler.Nav)

		// Back office, staff and admin only.
		r.Route("/admin/bookings", func(r chi.Router) {
			r.Use(mw.RequireRole(domain.RoleStaff, cfg.Auth.JWTSecret))
			r.Get("/", adminHandler.List)
			r.Get("/{id}", adminHandler.Get)
			r.Patch("/{id}/status", adminHandler.UpdateStatus)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down site API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Starting site API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func buildNotifier(cfg *config.Config) mailer.Notifier {
	if cfg.Email.DevMode {
		logger.Info("Email dev mode: inquiries will be logged, not sent")
		return mailer.NewDevNotifier()
	}
	if cfg.Email.MailerSendKey != "" {
		n, err := mailer.NewMailerSendNotifier(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
		if err == nil {
			logger.Info("Using MailerSend notifier")
			return n
		}
		logger.Warn("MailerSend unavailable, falling back to SMTP", "error", err)
	}
	logger.Info("Using SMTP notifier", "host", cfg.Email.SMTPHost, "port", cfg.Email.SMTPPort)
	return mailer.NewSMTPNotifier(
		cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom,
		cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS,
	)
}
