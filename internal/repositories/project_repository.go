package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatforge/internal/models"
)

type ProjectRepository interface {
	Put(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	Delete(ctx context.Context, id string) error
	// Transaction runs fn atomically; read-modify-write callers use it so a
	// load/compute/save pair cannot interleave with another writer.
	Transaction(ctx context.Context, fn func(txRepo ProjectRepository) error) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Put upserts by primary key; git_url collisions keep raising the engine's
// uniqueness error.
func (r *projectRepository) Put(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: project %s", ErrDuplicate, project.ID)
		}
		return fmt.Errorf("saving project %s: %w", project.ID, err)
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	res := r.db.WithContext(ctx).Where("id = ?", id).Take(&project)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting project %s: %w", id, res.Error)
	}
	return &project, nil
}

func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}

func (r *projectRepository) Transaction(ctx context.Context, fn func(txRepo ProjectRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&projectRepository{db: tx})
	})
}
