package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public reads and the auth-gated mutations
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Get("/projects", handlers.projectHandler.getAllProjects())
	r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
	r.Get("/hero", handlers.heroHandler.getHero())
	r.Post("/contact", handlers.contactHandler.submitMessage())

	// Mutations require an authenticated session
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Put("/hero", handlers.heroHandler.updateHero())
	})
}
