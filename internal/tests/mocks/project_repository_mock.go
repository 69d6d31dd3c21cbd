package mocks

import (
	"context"

	"chatforge/internal/models"
	"chatforge/internal/repositories"
)

type ProjectRepositoryMock struct {
	PutFunc         func(ctx context.Context, project *models.Project) error
	GetByIDFunc     func(ctx context.Context, id string) (*models.Project, error)
	GetAllFunc      func(ctx context.Context) ([]models.Project, error)
	DeleteFunc      func(ctx context.Context, id string) error
	TransactionFunc func(ctx context.Context, fn func(txRepo repositories.ProjectRepository) error) error
}

func (m *ProjectRepositoryMock) Put(ctx context.Context, project *models.Project) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, project)
	}
	return nil
}

func (m *ProjectRepositoryMock) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ProjectRepositoryMock) GetAll(ctx context.Context) ([]models.Project, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []models.Project{}, nil
}

func (m *ProjectRepositoryMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *ProjectRepositoryMock) Transaction(ctx context.Context, fn func(txRepo repositories.ProjectRepository) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(m)
}
