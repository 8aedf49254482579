package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hospital-records/internal/app"
	"hospital-records/internal/config"
	"hospital-records/internal/handlers"

	configLoader "github.com/andiksetyawan/config"
)

func main() {
	log.Println("Loading configuration...")

	cfg := &config.AppConfig{}
	loader := configLoader.New(
		configLoader.WithEnvPath(".env"),
	)

	if err := loader.Load(cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded (Server: %s, Driver: %s)", cfg.Server.Addr(), cfg.Database.Driver)

	// A broken store does not stop startup; /health reports it instead.
	db, err := config.InitDatabase(cfg.Database)
	if db == nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err != nil {
		log.Printf("DB init error: %v", err)
	}

	application := app.NewApplication(cfg, db)
	defer application.Close()

	if err := application.SchemaService.EnsureSchema(context.Background()); err != nil {
		log.Printf("DB init error: %v", err)
	}

	if cfg.Maintenance.Schedule != "" {
		if err := application.MaintenanceService.Start(); err != nil {
			log.Printf("Failed to start maintenance: %v", err)
		}
	}

	handler := handlers.NewHandler(application)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handlers.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Handle graceful shutdown
	idle := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		close(idle)
	}()

	log.Printf("Hospital records service listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}

	<-idle
}
