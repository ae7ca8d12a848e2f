package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type HeroRepo struct {
	db *gorm.DB
}

func NewHeroRepo(db *gorm.DB) *HeroRepo {
	return &HeroRepo{db}
}

// Get returns the hero row, or nil when the table is empty. Should more than
// one row exist, the oldest wins.
func (r *HeroRepo) Get() (*models.Hero, error) {
	var hero models.Hero
	err := r.db.Order("created_at ASC").First(&hero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// Upsert merges defaults, the stored row, and the caller's fields, then
// persists the result: in place when a row exists (keeping its id and
// created_at), otherwise as a new row with a fresh id.
//
// The fetch and the write are not atomic; concurrent upserts are
// last-writer-wins, which is acceptable for a single-editor profile record.
func (r *HeroRepo) Upsert(update models.HeroUpdate) (*models.Hero, error) {
	current, err := r.Get()
	if err != nil {
		return nil, err
	}

	merged := models.MergeHero(current, update)
	if current == nil {
		merged.ID = uuid.New()
		if err := r.db.Create(&merged).Error; err != nil {
			return nil, err
		}
		return &merged, nil
	}

	if err := r.db.Save(&merged).Error; err != nil {
		return nil, err
	}
	return &merged, nil
}
