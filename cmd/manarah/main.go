// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/manarahtours/manarah/internal/cache"
	"github.com/manarahtours/manarah/internal/config"
	"github.com/manarahtours/manarah/internal/geoip"
	"github.com/manarahtours/manarah/internal/handler"
	"github.com/manarahtours/manarah/internal/handler/api"
	"github.com/manarahtours/manarah/internal/logging"
	"github.com/manarahtours/manarah/internal/middleware"
	"github.com/manarahtours/manarah/internal/rbac"
	"github.com/manarahtours/manarah/internal/scheduler"
	"github.com/manarahtours/manarah/internal/service"
	"github.com/manarahtours/manarah/internal/session"
	"github.com/manarahtours/manarah/internal/store"
	"github.com/manarahtours/manarah/internal/version"
)

// crudHandlers defines the standard JSON CRUD handler methods.
type crudHandlers struct {
	List   http.HandlerFunc
	Create http.HandlerFunc
	Get    http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

// registerCRUD registers standard CRUD routes for a resource.
// Routes: GET /, POST /, GET /{id}, PUT /{id}, DELETE /{id}
func registerCRUD(r chi.Router, base, baseID string, h crudHandlers) {
	r.Get(base, h.List)
	r.Post(base, h.Create)
	r.Get(baseID, h.Get)
	r.Put(baseID, h.Update)
	r.Delete(baseID, h.Delete)
}

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Manarah - travel agency content backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MANARAH_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MANARAH_DB_PATH           SQLite database path (default: ./data/manarah.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MANARAH_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MANARAH_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MANARAH_UPLOADS_DIR       Uploaded image directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MANARAH_REDIS_URL         Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MANARAH_GEOIP_DB_PATH     GeoLite2 country database path (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("manarah %s\n", version.Get())
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data and upload directories exist
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write INFO-and-above audit records to the database
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewAuditLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("audit log integration enabled")

	// Seed bootstrap super admin account
	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Initialize session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Initialize cache
	cacheConfig := cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}
	publicCache, err := cache.New(cacheConfig)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := publicCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	if cfg.UseRedisCache() {
		slog.Info("cache initialized", "backend", "redis", "url", cache.SanitizeRedisURL(cfg.RedisURL))
	} else {
		slog.Info("cache initialized", "backend", "memory", "max_size", cfg.CacheMaxSize)
	}

	// Initialize GeoIP lookup for newsletter country attribution
	geo := geoip.NewLookup()
	if cfg.GeoIPEnabled() {
		if err := geo.Init(cfg.GeoIPDBPath); err != nil {
			slog.Warn("geoip initialization failed, country lookup disabled", "error", err)
		} else {
			slog.Info("geoip lookup initialized", "path", cfg.GeoIPDBPath)
		}
	}
	defer func() {
		if err := geo.Close(); err != nil {
			slog.Error("error closing geoip database", "error", err)
		}
	}()

	// Media storage for uploaded images
	media := service.NewMediaService(cfg.UploadsDir)

	// Outbound mail for contact form notifications
	var mailer *service.Mailer
	if cfg.MailEnabled() {
		mailer = service.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
		slog.Info("mailer initialized", "host", cfg.SMTPHost, "notify_to", cfg.ContactNotifyTo)
	} else {
		slog.Info("mailer disabled, contact notifications will not be sent")
	}

	// Start background jobs (newsletter purge, audit log purge, geoip reload)
	sched := scheduler.New(db, logger, geo, cfg.NewsletterRetentionDays)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))

	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized")

	// Public rate limiter for the website-facing API
	publicRateLimiter := middleware.NewGlobalRateLimiter(10.0, 20)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, sessionManager, loginProtection)
	usersHandler := handler.NewUsersHandler(db)
	heroSlidesHandler := handler.NewHeroSlidesHandler(db, media, publicCache)
	eventsHandler := handler.NewEventsHandler(db, media, publicCache)
	testimonialsHandler := handler.NewTestimonialsHandler(db, media, publicCache)
	faqsHandler := handler.NewFaqsHandler(db, publicCache)
	socialMediaHandler := handler.NewSocialMediaHandler(db, media, publicCache)
	packagesHandler := handler.NewPackagesHandler(db, media, publicCache)
	hotelsHandler := handler.NewHotelsHandler(db, publicCache)
	airlinesHandler := handler.NewAirlinesHandler(db, publicCache)
	contactsHandler := handler.NewContactsHandler(db)
	newsletterHandler := handler.NewNewsletterHandler(db)
	auditHandler := handler.NewAuditHandler(db)
	healthHandler := handler.NewHealthHandler(db, sessionManager, cfg.UploadsDir)
	apiHandler := api.NewHandler(db, media, publicCache, mailer, geo, cfg.BaseURL, cfg.ContactNotifyTo)

	// Health check routes (public, more detail for authenticated callers)
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Public website API (JSON, rate limited, no CSRF)
	r.Route("/api", func(r chi.Router) {
		r.Use(publicRateLimiter.Middleware())

		r.Get("/faqs", apiHandler.ListFaqs)
		r.Get("/social-media", apiHandler.ListSocialMedia)
		r.Get("/testimonials", apiHandler.ListTestimonials)
		r.Get("/hero-slides", apiHandler.ListHeroSlides)
		r.Get("/events", apiHandler.ListEvents)
		r.Get("/umrah-packages", apiHandler.ListPackages)
		r.Get("/umrah-packages/{slug}", apiHandler.GetPackage)

		r.Post("/contact", apiHandler.SubmitContact)
		r.Post("/newsletter/subscribe", apiHandler.Subscribe)
	})

	// Unsubscribe landing page linked from newsletter emails
	r.Get("/newsletter/unsubscribe/{token}", apiHandler.Unsubscribe)

	// Admin panel API (session + CSRF protected)
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)

		r.With(publicRateLimiter.Middleware(), loginProtection.Middleware()).
			Post(handler.RouteLogin, authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager, db))

			r.Post(handler.RouteLogout, authHandler.Logout)
			r.Get(handler.RouteMe, authHandler.Me)

			// Content routes (super admin + admin)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAction(rbac.ActionManageContent))

				registerCRUD(r, handler.RouteHeroSlides, handler.RouteHeroSlidesID, crudHandlers{
					List: heroSlidesHandler.List, Create: heroSlidesHandler.Create, Get: heroSlidesHandler.Get,
					Update: heroSlidesHandler.Update, Delete: heroSlidesHandler.Delete,
				})
				r.Post(handler.RouteHeroSlides+handler.RouteSuffixReorder, heroSlidesHandler.Reorder)

				registerCRUD(r, handler.RouteEvents, handler.RouteEventsID, crudHandlers{
					List: eventsHandler.List, Create: eventsHandler.Create, Get: eventsHandler.Get,
					Update: eventsHandler.Update, Delete: eventsHandler.Delete,
				})
				r.Post(handler.RouteEvents+handler.RouteSuffixReorder, eventsHandler.Reorder)

				registerCRUD(r, handler.RouteTestimonials, handler.RouteTestimonialsID, crudHandlers{
					List: testimonialsHandler.List, Create: testimonialsHandler.Create, Get: testimonialsHandler.Get,
					Update: testimonialsHandler.Update, Delete: testimonialsHandler.Delete,
				})
				r.Post(handler.RouteTestimonials+handler.RouteSuffixReorder, testimonialsHandler.Reorder)

				registerCRUD(r, handler.RouteFaqs, handler.RouteFaqsID, crudHandlers{
					List: faqsHandler.List, Create: faqsHandler.Create, Get: faqsHandler.Get,
					Update: faqsHandler.Update, Delete: faqsHandler.Delete,
				})
				r.Post(handler.RouteFaqs+handler.RouteSuffixReorder, faqsHandler.Reorder)

				registerCRUD(r, handler.RouteSocialMedia, handler.RouteSocialMediaID, crudHandlers{
					List: socialMediaHandler.List, Create: socialMediaHandler.Create, Get: socialMediaHandler.Get,
					Update: socialMediaHandler.Update, Delete: socialMediaHandler.Delete,
				})
				r.Post(handler.RouteSocialMedia+handler.RouteSuffixReorder, socialMediaHandler.Reorder)

				registerCRUD(r, handler.RoutePackages, handler.RoutePackagesID, crudHandlers{
					List: packagesHandler.List, Create: packagesHandler.Create, Get: packagesHandler.Get,
					Update: packagesHandler.Update, Delete: packagesHandler.Delete,
				})
				r.Post(handler.RoutePackages+handler.RouteSuffixReorder, packagesHandler.Reorder)

				registerCRUD(r, handler.RouteHotels, handler.RouteHotelsID, crudHandlers{
					List: hotelsHandler.List, Create: hotelsHandler.Create, Get: hotelsHandler.Get,
					Update: hotelsHandler.Update, Delete: hotelsHandler.Delete,
				})

				registerCRUD(r, handler.RouteAirlines, handler.RouteAirlinesID, crudHandlers{
					List: airlinesHandler.List, Create: airlinesHandler.Create, Get: airlinesHandler.Get,
					Update: airlinesHandler.Update, Delete: airlinesHandler.Delete,
				})

				// Contact inbox
				r.Get(handler.RouteContacts, contactsHandler.List)
				r.Get(handler.RouteContactsID, contactsHandler.Get)
				r.Patch(handler.RouteContactsID+handler.RouteSuffixStatus, contactsHandler.UpdateStatus)
				r.Delete(handler.RouteContactsID, contactsHandler.Delete)

				// Newsletter subscribers
				r.Get(handler.RouteNewsletter, newsletterHandler.List)
				r.Delete(handler.RouteNewsletterID, newsletterHandler.Delete)

				// Activity log
				r.Get(handler.RouteActivity, auditHandler.List)
			})

			// User management routes (role checks inside the handler)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAction(rbac.ActionManageUsers))

				registerCRUD(r, handler.RouteUsers, handler.RouteUsersID, crudHandlers{
					List: usersHandler.List, Create: usersHandler.Create, Get: usersHandler.Get,
					Update: usersHandler.Update, Delete: usersHandler.Delete,
				})
			})
		})
	})

	// Serve uploaded images (cache for 1 week)
	uploadsHandler := middleware.StaticCache(604800)(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	r.Handle("/uploads/*", uploadsHandler)

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
