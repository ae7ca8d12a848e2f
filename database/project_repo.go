package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, most recently created first. The collection
// is small enough that there is no pagination.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns the project with the given id, or nil when none matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Insert persists a new project, assigning an id when the caller did not
// supply one. Keywords are re-normalized so the stored form is always a
// well-formed array, never null.
func (r *ProjectRepo) Insert(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	project.Keywords = models.NormalizeKeywords(models.KeywordList(project.Keywords...))
	return r.db.Create(project).Error
}

// Update merges the provided fields onto the stored row and writes the whole
// row back, refreshing updated_at. Fields absent from the update keep their
// current values; keywords are re-parsed only when supplied. Returns nil when
// no row matches.
//
// The read and the write are not wrapped in a transaction: concurrent updates
// to the same project are last-writer-wins.
func (r *ProjectRepo) Update(id uuid.UUID, update models.ProjectUpdate) (*models.Project, error) {
	current, err := r.FindByID(id)
	if err != nil || current == nil {
		return nil, err
	}

	merged := update.ApplyTo(*current)
	if err := r.db.Save(&merged).Error; err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the project and returns the removed row, or nil when no row
// matched.
func (r *ProjectRepo) Delete(id uuid.UUID) (*models.Project, error) {
	current, err := r.FindByID(id)
	if err != nil || current == nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return current, nil
}
