package api

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the real handlers over an in-memory SQLite database,
// without the auth middleware: these tests cover handler behavior, session
// validation belongs to the identity provider.
func newTestRouter(t *testing.T, mailer Mailer) (*chi.Mux, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	d := database.New(db)
	require.NoError(t, d.Migrate())

	handlers := initializeHandlers(d, mailer)

	r := chi.NewRouter()
	r.Get("/projects", handlers.projectHandler.getAllProjects())
	r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
	r.Post("/projects", handlers.projectHandler.createProject())
	r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
	r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
	r.Get("/hero", handlers.heroHandler.getHero())
	r.Put("/hero", handlers.heroHandler.updateHero())
	r.Post("/contact", handlers.contactHandler.submitMessage())

	return r, d
}
