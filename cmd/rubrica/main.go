package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/formativa/rubrica/internal/api/http"
	"github.com/formativa/rubrica/internal/config"
	"github.com/formativa/rubrica/internal/db"
	"github.com/formativa/rubrica/internal/rubric"
	"github.com/formativa/rubrica/internal/session"
	"github.com/formativa/rubrica/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Store ---
	var store session.Store
	if cfg.DBDriver == "memory" {
		store = session.NewMemoryStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = session.NewSQLStore(dbh, cfg.DBDriver)
	}
	svc := rubric.NewService(store)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	api.MountForms(r, svc, cfg.ReportState)

	archive, err := storage.NewFSStore(cfg.ReportsDir)
	if err != nil {
		log.Fatalf("reports dir: %v", err)
	}
	api.MountArchive(r, svc, archive, cfg.ReportState)

	log.Printf("rubrica listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
