package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo *ProjectRepo
	heroRepo    *HeroRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		heroRepo:    NewHeroRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) HeroRepo() *HeroRepo {
	return d.heroRepo
}

// Migrate brings the schema up to date and seeds tables that come up empty.
// It is idempotent and runs once at startup, before the server accepts
// requests.
func (d Database) Migrate() error {
	if err := ensureProjectsTable(d.projectRepo.db); err != nil {
		return err
	}
	return ensureHeroTable(d.heroRepo.db)
}
