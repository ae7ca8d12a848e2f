package api

import (
	"context"

	"github.com/rpupo63/portfolio-backend/database"
)

// Mailer relays contact-form submissions to the site owner.
type Mailer interface {
	SendContact(ctx context.Context, name, email, message string) error
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, mailer Mailer) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		heroHandler:    newHeroHandler(database.HeroRepo()),
		contactHandler: newContactHandler(mailer),
	}
}
