package http

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/formativa/rubrica/internal/report"
	"github.com/formativa/rubrica/internal/rubric"
	"github.com/formativa/rubrica/internal/storage"

	"github.com/go-chi/chi/v5"
)

// MountArchive wires the report archive: POST renders and stores a snapshot of
// the current report, GET lists the snapshots of one form, and /reports/*
// serves a stored snapshot back.
func MountArchive(r chi.Router, svc *rubric.Service, store storage.ArchiveStore, defaultState string) {
	r.Post("/forms/{key}/report/archive", func(w http.ResponseWriter, req *http.Request) {
		key := chi.URLParam(req, "key")
		snap, err := svc.Snapshot(req.Context(), key)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		state := req.URL.Query().Get("state")
		if state == "" {
			state = defaultState
		}
		var page strings.Builder
		if err := report.Render(&page, report.Build(snap, state)); err != nil {
			http.Error(w, "render failed", 500)
			return
		}
		blobKey := "reports/" + key + "/" +
			time.Now().UTC().Format("20060102-150405.000000000") + ".html"
		stored, err := store.Put(blobKey, strings.NewReader(page.String()))
		if err != nil {
			http.Error(w, "store error: "+err.Error(), 500)
			return
		}
		writeJSON(w, map[string]string{"key": stored})
	})

	r.Get("/forms/{key}/report/archive", func(w http.ResponseWriter, req *http.Request) {
		key := chi.URLParam(req, "key")
		if _, err := rubric.Get(key); err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		keys, err := store.List("reports/" + key)
		if err != nil {
			http.Error(w, "list error: "+err.Error(), 500)
			return
		}
		if keys == nil {
			keys = []string{}
		}
		writeJSON(w, keys)
	})

	r.Get("/reports/*", func(w http.ResponseWriter, req *http.Request) {
		blobKey := "reports/" + strings.TrimPrefix(chi.URLParam(req, "*"), "/")
		rc, err := store.Get(blobKey)
		if err != nil {
			http.Error(w, "not found", 404)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.Copy(w, rc)
	})
}
