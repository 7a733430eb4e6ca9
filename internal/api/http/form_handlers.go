package http

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/formativa/rubrica/internal/report"
	"github.com/formativa/rubrica/internal/rubric"

	"github.com/go-chi/chi/v5"
)

func ListFormsHandler(svc *rubric.Service) http.HandlerFunc {
	type summary struct {
		Key   string `json:"key"`
		Title string `json:"title"`
		Items int    `json:"items"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		forms := svc.Forms()
		out := make([]summary, len(forms))
		for i, f := range forms {
			out[i] = summary{Key: f.Key, Title: f.Title, Items: len(f.Items)}
		}
		writeJSON(w, out)
	}
}

func GetFormHandler(svc *rubric.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		snap, err := svc.Snapshot(r.Context(), key)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		writeJSON(w, snap)
	}
}

func ToggleHandler(svc *rubric.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		var req struct {
			Item    string `json:"item"`
			Option  string `json:"option"`
			Checked bool   `json:"checked"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Item == "" || req.Option == "" {
			http.Error(w, "item and option required", 400)
			return
		}
		snap, err := svc.Toggle(r.Context(), key, req.Item, req.Option, req.Checked)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, snap)
	}
}

func PercentHandler(svc *rubric.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		var req struct {
			Value *float64 `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		// Absent value clears the override, same as the NaN path.
		value := math.NaN()
		if req.Value != nil {
			value = *req.Value
		}
		snap, err := svc.SetPercent(r.Context(), key, value)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, snap)
	}
}

func ExcludeHandler(svc *rubric.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		var req struct {
			Item     string `json:"item"`
			Excluded bool   `json:"excluded"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Item == "" {
			http.Error(w, "item required", 400)
			return
		}
		snap, err := svc.SetExcluded(r.Context(), key, req.Item, req.Excluded)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, snap)
	}
}

func CalculateHandler(svc *rubric.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		snap, err := svc.Calculate(r.Context(), key)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		writeJSON(w, snap)
	}
}

func ResetHandler(svc *rubric.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		snap, err := svc.Reset(r.Context(), key)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, snap)
	}
}

func ReportHandler(svc *rubric.Service, defaultState string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		snap, err := svc.Snapshot(r.Context(), key)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		state := r.URL.Query().Get("state")
		if state == "" {
			state = defaultState
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := report.Render(w, report.Build(snap, state)); err != nil {
			http.Error(w, "render failed", 500)
		}
	}
}

func LintHandler(svc *rubric.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		form, err := rubric.Get(key)
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		warnings := rubric.Lint(form)
		if warnings == nil {
			warnings = []rubric.Warning{}
		}
		writeJSON(w, warnings)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
