package unit_tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chatforge/internal/models"
	"chatforge/internal/services"
	"chatforge/internal/tests/mocks"
)

func newProjectService(repo *mocks.ProjectRepositoryMock) services.ProjectService {
	svc := services.NewProjectService(repo)
	svc.Startup(context.Background())
	return svc
}

func TestProjectService_Save_StampsTimestamp(t *testing.T) {
	var written *models.Project
	repo := &mocks.ProjectRepositoryMock{
		PutFunc: func(ctx context.Context, project *models.Project) error {
			written = project
			return nil
		},
	}
	svc := newProjectService(repo)

	project := &models.Project{ID: "p1", Timestamp: time.Time{}}
	err := svc.Save(project)
	assert.NoError(t, err)
	assert.False(t, written.Timestamp.IsZero())
}

func TestProjectService_Save_MissingID(t *testing.T) {
	svc := newProjectService(&mocks.ProjectRepositoryMock{})

	err := svc.Save(&models.Project{})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestProjectService_Update_SameWritePath(t *testing.T) {
	var written *models.Project
	repo := &mocks.ProjectRepositoryMock{
		PutFunc: func(ctx context.Context, project *models.Project) error {
			written = project
			return nil
		},
	}
	svc := newProjectService(repo)

	err := svc.Update(&models.Project{ID: "p1"})
	assert.NoError(t, err)
	assert.Equal(t, "p1", written.ID)
}

func TestProjectService_UpsertFeature_ReplacesAndMovesToEnd(t *testing.T) {
	stored := &models.Project{
		ID: "p1",
		Features: []models.Feature{
			{ID: "1", Name: "first"},
			{ID: "2", Name: "second"},
			{ID: "3", Name: "third"},
		},
	}
	var written *models.Project
	repo := &mocks.ProjectRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return stored, nil
		},
		PutFunc: func(ctx context.Context, project *models.Project) error {
			written = project
			return nil
		},
	}
	svc := newProjectService(repo)

	err := svc.UpsertFeature("p1", models.Feature{ID: "2", Name: "renamed"})
	assert.NoError(t, err)
	assert.Len(t, written.Features, 3)
	assert.Equal(t, "1", written.Features[0].ID)
	assert.Equal(t, "3", written.Features[1].ID)
	assert.Equal(t, "2", written.Features[2].ID)
	assert.Equal(t, "renamed", written.Features[2].Name)
}

func TestProjectService_UpsertFeature_AppendsNewID(t *testing.T) {
	stored := &models.Project{
		ID:       "p1",
		Features: []models.Feature{{ID: "1"}},
	}
	var written *models.Project
	repo := &mocks.ProjectRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return stored, nil
		},
		PutFunc: func(ctx context.Context, project *models.Project) error {
			written = project
			return nil
		},
	}
	svc := newProjectService(repo)

	err := svc.UpsertFeature("p1", models.Feature{ID: "9", Name: "new"})
	assert.NoError(t, err)
	assert.Len(t, written.Features, 2)
	assert.Equal(t, "9", written.Features[1].ID)
}

func TestProjectService_UpsertFeature_MissingProject(t *testing.T) {
	svc := newProjectService(&mocks.ProjectRepositoryMock{})

	err := svc.UpsertFeature("missing", models.Feature{ID: "1"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProjectService_UpsertFeature_MissingFeatureID(t *testing.T) {
	svc := newProjectService(&mocks.ProjectRepositoryMock{})

	err := svc.UpsertFeature("p1", models.Feature{})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestProjectService_ReplaceBranches_Wholesale(t *testing.T) {
	stored := &models.Project{
		ID:       "p1",
		Branches: []models.Branch{{Name: "main"}, {Name: "dev"}},
	}
	var written *models.Project
	repo := &mocks.ProjectRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return stored, nil
		},
		PutFunc: func(ctx context.Context, project *models.Project) error {
			written = project
			return nil
		},
	}
	svc := newProjectService(repo)

	err := svc.ReplaceBranches("p1", []models.Branch{{Name: "release"}})
	assert.NoError(t, err)
	assert.Len(t, written.Branches, 1)
	assert.Equal(t, "release", written.Branches[0].Name)
}

func TestProjectService_ReplaceBranches_MissingProject(t *testing.T) {
	svc := newProjectService(&mocks.ProjectRepositoryMock{})

	err := svc.ReplaceBranches("missing", nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
