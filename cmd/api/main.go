package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/faq"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/notifications"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/ratelimit"
	"portfolio-backend/internal/validation"
	"portfolio-backend/internal/welcome"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	provider := db.NewProvider(cfg.MongoURI, cfg.MongoDB)
	cols, err := provider.EnsureConnected(ctx)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
	defer provider.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limiterStore, closeStore, err := newLimiterStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("redis connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()
	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	contactLimiter := ratelimit.New(limiterStore, "contact", cfg.RateLimitSubmissions, window, logger)

	var notifier contact.Notifier
	brevo := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer := notifications.NewContactMailer(brevo, cfg.NotifyEmail); mailer != nil {
		notifier = mailer
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	} else {
		logger.Info("brevo mailer disabled")
	}

	val := validation.New()

	faqService := faq.NewService(faq.NewRepository(cols.FAQs), cfg.Timezone)
	projectsService := projects.NewService(projects.NewRepository(cols.Projects), cfg.Timezone)
	welcomeService := welcome.NewService(welcome.NewRepository(cols.WelcomeNotes), cfg.Timezone)
	contactService := contact.NewService(contact.NewRepository(cols.ContactSubmissions), cfg.Timezone, notifier)

	a := &app{
		log:            logger,
		origins:        cfg.FrontendOrigins,
		health:         &handlers.Health{Store: provider, Log: logger},
		faqs:           faq.NewHandler(faqService, logger),
		projects:       projects.NewHandler(projectsService, val, logger),
		welcome:        welcome.NewHandler(welcomeService, val, logger),
		contact:        contact.NewHandler(contactService, val, logger),
		contactLimiter: contactLimiter.Middleware,
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

// newLimiterStore prefers Redis so counters are shared between replicas and
// falls back to process memory when Redis is not configured.
func newLimiterStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ratelimit.Store, func(), error) {
	if cfg.RedisURL == "" && cfg.RedisAddr == "" {
		logger.Info("rate limit store: memory")
		return ratelimit.NewMemoryStore(), func() {}, nil
	}

	var store *ratelimit.RedisStore
	if cfg.RedisURL != "" {
		var err error
		store, err = ratelimit.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
	} else {
		store = ratelimit.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	logger.Info("rate limit store: redis")
	return store, func() { _ = store.Close() }, nil
}
