package http

import (
	"github.com/formativa/rubrica/internal/rubric"

	"github.com/go-chi/chi/v5"
)

// MountForms wires the form routes onto a chi router.
func MountForms(r chi.Router, svc *rubric.Service, defaultState string) {
	r.Get("/forms", ListFormsHandler(svc))
	r.Route("/forms/{key}", func(fr chi.Router) {
		fr.Get("/", GetFormHandler(svc))
		fr.Post("/toggle", ToggleHandler(svc))
		fr.Post("/percent", PercentHandler(svc))
		fr.Post("/exclude", ExcludeHandler(svc))
		fr.Post("/calculate", CalculateHandler(svc))
		fr.Post("/reset", ResetHandler(svc))
		fr.Get("/report", ReportHandler(svc, defaultState))
		fr.Get("/lint", LintHandler(svc))
	})
}
