package services

import (
	"context"
	"fmt"
	"time"

	"chatforge/internal/events"
	"chatforge/internal/models"
	"chatforge/internal/repositories"
)

type ProjectService interface {
	Startup(ctx context.Context)
	// Save stamps the timestamp and writes the full document. Duplicate
	// git urls surface as a repositories.ErrDuplicate from the engine.
	Save(project *models.Project) error
	// Update is the same write path as Save; the document's own id is the key.
	Update(project *models.Project) error
	GetByID(id string) (*models.Project, error)
	GetAll() ([]models.Project, error)
	DeleteByID(id string) error
	// UpsertFeature replaces any feature with the same id and appends the new
	// entry at the end of the list. The move-to-end is observable display
	// behavior and deliberate.
	UpsertFeature(projectID string, feature models.Feature) error
	// ReplaceBranches swaps the whole branch list; there is no merge-by-key
	// path for branches.
	ReplaceBranches(projectID string, branches []models.Branch) error
}

type projectService struct {
	repo repositories.ProjectRepository
	ctx  context.Context
}

func NewProjectService(repo repositories.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *projectService) Save(project *models.Project) error {
	if project == nil || project.ID == "" {
		return fmt.Errorf("%w: project id is required", ErrValidation)
	}
	project.Timestamp = time.Now()
	if err := s.repo.Put(s.ctx, project); err != nil {
		return fmt.Errorf("service: save project %s: %w", project.ID, err)
	}
	events.Emit(s.ctx, "projects:changed", events.StoreEvent{Type: events.EventUpdated, Collection: "projects", Key: project.ID})
	return nil
}

func (s *projectService) Update(project *models.Project) error {
	return s.Save(project)
}

func (s *projectService) GetByID(id string) (*models.Project, error) {
	project, err := s.repo.GetByID(s.ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get project %s: %w", id, err)
	}
	return project, nil
}

func (s *projectService) GetAll() ([]models.Project, error) {
	projects, err := s.repo.GetAll(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) DeleteByID(id string) error {
	if err := s.repo.Delete(s.ctx, id); err != nil {
		return fmt.Errorf("service: delete project %s: %w", id, err)
	}
	events.Emit(s.ctx, "projects:changed", events.StoreEvent{Type: events.EventDeleted, Collection: "projects", Key: id})
	return nil
}

func (s *projectService) UpsertFeature(projectID string, feature models.Feature) error {
	if feature.ID == "" {
		return fmt.Errorf("%w: feature id is required", ErrValidation)
	}

	err := s.repo.Transaction(s.ctx, func(txRepo repositories.ProjectRepository) error {
		project, err := txRepo.GetByID(s.ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return fmt.Errorf("%w: project %s", ErrNotFound, projectID)
		}

		features := make([]models.Feature, 0, len(project.Features)+1)
		for _, f := range project.Features {
			if f.ID != feature.ID {
				features = append(features, f)
			}
		}
		features = append(features, feature)

		project.Features = features
		project.Timestamp = time.Now()
		return txRepo.Put(s.ctx, project)
	})
	if err != nil {
		return fmt.Errorf("service: upsert feature %s on project %s: %w", feature.ID, projectID, err)
	}
	events.Emit(s.ctx, "projects:changed", events.StoreEvent{Type: events.EventUpdated, Collection: "projects", Key: projectID})
	return nil
}

func (s *projectService) ReplaceBranches(projectID string, branches []models.Branch) error {
	err := s.repo.Transaction(s.ctx, func(txRepo repositories.ProjectRepository) error {
		project, err := txRepo.GetByID(s.ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return fmt.Errorf("%w: project %s", ErrNotFound, projectID)
		}

		project.Branches = branches
		project.Timestamp = time.Now()
		return txRepo.Put(s.ctx, project)
	})
	if err != nil {
		return fmt.Errorf("service: replace branches of project %s: %w", projectID, err)
	}
	events.Emit(s.ctx, "projects:changed", events.StoreEvent{Type: events.EventUpdated, Collection: "projects", Key: projectID})
	return nil
}
