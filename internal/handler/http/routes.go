package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// public filtered reads; a bearer token is honored when present but
	// never required
	router.Group(func(r chi.Router) {
		r.Use(h.authOptional)

		r.Get("/api/profile", h.profile)
		r.Get("/api/profile/entries/{entryID}", h.profileEntry)
		r.Get("/api/profile/{username}", h.profile)
		r.Get("/api/profile/{username}/entries/{entryID}", h.profileEntry)

		r.Get("/api/ai/profile", h.aiProfile)
		r.Get("/api/ai/profile/{username}", h.aiProfile)
	})

	// owner management surface
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/entries", func(r chi.Router) {
			r.Post("/", h.createEntry)
			r.Get("/", h.listOwnEntries)
			r.Get("/{entryID}", h.getOwnEntry)
			r.Patch("/{entryID}", h.updateEntry)
			r.Delete("/{entryID}", h.deleteEntry)
		})

		r.Get("/api/settings", h.getSettings)
		r.Put("/api/settings", h.saveSettings)
	})

	// operator surface
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireAdmin)

		r.Route("/api/admin/rules", func(r chi.Router) {
			r.Get("/", h.listRules)
			r.Post("/", h.createRule)
			r.Put("/{ruleID}", h.updateRule)
		})
	})

	return router
}
