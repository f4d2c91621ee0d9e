//	@title			Event Gallery API
//	@version		1.0
//	@description	Admin backend for event image upload, listing and deletion.
//
//	@host		localhost:3000
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/eventgallery/service/internal/auth"
	"github.com/eventgallery/service/internal/config"
	"github.com/eventgallery/service/internal/db"
	"github.com/eventgallery/service/internal/event"
	appMiddleware "github.com/eventgallery/service/internal/middleware"
	"github.com/eventgallery/service/internal/pages"
	"github.com/eventgallery/service/internal/storage"

	_ "github.com/eventgallery/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StoragePublicBase,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	eventRepo := event.NewRepository(pool)
	eventSvc := event.NewService(store, eventRepo)
	eventHandler := event.NewHandler(eventSvc)

	authSvc := auth.NewService(cfg)
	authHandler := auth.NewHandler(authSvc)

	pageHandler := pages.NewHandler()

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:3000/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Pages
	r.Get("/", pageHandler.Main)
	r.Get("/mainpage", pageHandler.Main)
	r.Get("/login", pageHandler.Login)
	r.Handle("/public/*", http.StripPrefix("/public/", pageHandler.Assets()))

	// API
	r.Post("/login/verify", authHandler.VerifyLogin)
	r.Post("/change-password", authHandler.ChangePassword)
	r.Post("/api/upload-event", eventHandler.UploadEvent)
	r.Get("/api/events", eventHandler.ListEvents)
	r.Delete("/delete-event/{id}", eventHandler.DeleteEvent)

	// SPA-style catch-all: unmatched GETs receive the admin page.
	r.NotFound(pageHandler.Fallback)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
