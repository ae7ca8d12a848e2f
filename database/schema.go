package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed rows carry fixed ids so the insert-if-absent clause below actually
// dedupes when two fresh deployments race the COUNT check.
var seedProjects = []models.Project{
	{
		ID:          uuid.MustParse("6f1f2f1a-9f62-4c3a-9d6e-0c2a8a6e4b01"),
		Title:       "Project One",
		Description: "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		Img:         "/project.jpg",
		Link:        "https://www.google.com",
		Keywords:    models.Keywords{},
	},
	{
		ID:          uuid.MustParse("6f1f2f1a-9f62-4c3a-9d6e-0c2a8a6e4b02"),
		Title:       "Project Two",
		Description: "Short blurb.",
		Img:         "/project.jpg",
		Link:        "https://www.google.com",
		Keywords:    models.Keywords{},
	},
	{
		ID:          uuid.MustParse("6f1f2f1a-9f62-4c3a-9d6e-0c2a8a6e4b03"),
		Title:       "Project Three",
		Description: "Short blurb.",
		Img:         "https://placehold.co/300.png",
		Link:        "https://www.google.com",
		Keywords:    models.Keywords{},
	},
}

var seedHeroID = uuid.MustParse("6f1f2f1a-9f62-4c3a-9d6e-0c2a8a6e4b10")

// ensureProjectsTable creates the projects table if it does not exist and
// seeds it the first time it comes up empty. Safe to call repeatedly; any
// storage error propagates unchanged.
func ensureProjectsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return err
	}
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return seedProjectsTable(db)
}

func seedProjectsTable(db *gorm.DB) error {
	rows := make([]models.Project, len(seedProjects))
	copy(rows, seedProjects)
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// ensureHeroTable mirrors ensureProjectsTable for the hero singleton.
func ensureHeroTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Hero{}); err != nil {
		return err
	}
	var count int64
	if err := db.Model(&models.Hero{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return seedHeroTable(db)
}

func seedHeroTable(db *gorm.DB) error {
	row := models.DefaultHero()
	row.ID = seedHeroID
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}
