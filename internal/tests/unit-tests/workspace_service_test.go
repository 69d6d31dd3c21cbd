package unit_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"chatforge/internal/models"
	"chatforge/internal/services"
	"chatforge/internal/tests/mocks"
)

func newWorkspace(chatRepo *mocks.ChatRepositoryMock, projectRepo *mocks.ProjectRepositoryMock) services.WorkspaceService {
	ctx := context.Background()
	projects := services.NewProjectService(projectRepo)
	projects.Startup(ctx)
	chats := services.NewChatService(chatRepo, projects)
	chats.Startup(ctx)
	svc := services.NewWorkspaceService(projects, chats)
	svc.Startup(ctx)
	return svc
}

func TestWorkspaceService_GetProjectChats_MissingProjectIsEmpty(t *testing.T) {
	svc := newWorkspace(&mocks.ChatRepositoryMock{}, &mocks.ProjectRepositoryMock{})

	chats, err := svc.GetProjectChats("missing")
	assert.NoError(t, err)
	assert.Empty(t, chats)
}

func TestWorkspaceService_GetProjectChats_KeepsFeatureOrder(t *testing.T) {
	projectRepo := &mocks.ProjectRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return &models.Project{
				ID:       "p1",
				Features: []models.Feature{{ID: "3"}, {ID: "1"}, {ID: "2"}},
			}, nil
		},
	}
	chatRepo := &mocks.ChatRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Chat, error) {
			return &models.Chat{ID: id}, nil
		},
	}
	svc := newWorkspace(chatRepo, projectRepo)

	chats, err := svc.GetProjectChats("p1")
	assert.NoError(t, err)
	assert.Len(t, chats, 3)
	assert.Equal(t, "3", chats[0].ID)
	assert.Equal(t, "1", chats[1].ID)
	assert.Equal(t, "2", chats[2].ID)
}

func TestWorkspaceService_GetProjectChats_DanglingReferenceStaysNil(t *testing.T) {
	projectRepo := &mocks.ProjectRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return &models.Project{
				ID:       "p1",
				Features: []models.Feature{{ID: "gone"}},
			}, nil
		},
	}
	svc := newWorkspace(&mocks.ChatRepositoryMock{}, projectRepo)

	chats, err := svc.GetProjectChats("p1")
	assert.NoError(t, err)
	assert.Len(t, chats, 1)
	assert.Nil(t, chats[0])
}

func TestWorkspaceService_GetProjectChat_Found(t *testing.T) {
	projectRepo := &mocks.ProjectRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return &models.Project{ID: "p1", Features: []models.Feature{{ID: "1"}}}, nil
		},
	}
	chatRepo := &mocks.ChatRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Chat, error) {
			return &models.Chat{ID: id}, nil
		},
	}
	svc := newWorkspace(chatRepo, projectRepo)

	chat, err := svc.GetProjectChat("p1", "1")
	assert.NoError(t, err)
	assert.NotNil(t, chat)
	assert.Equal(t, "1", chat.ID)
}

func TestWorkspaceService_GetProjectChat_MissingFeature(t *testing.T) {
	projectRepo := &mocks.ProjectRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Project, error) {
			return &models.Project{ID: "p1", Features: []models.Feature{{ID: "1"}}}, nil
		},
	}
	svc := newWorkspace(&mocks.ChatRepositoryMock{}, projectRepo)

	chat, err := svc.GetProjectChat("p1", "2")
	assert.NoError(t, err)
	assert.Nil(t, chat)
}

func TestWorkspaceService_GetProjectChat_MissingProject(t *testing.T) {
	svc := newWorkspace(&mocks.ChatRepositoryMock{}, &mocks.ProjectRepositoryMock{})

	chat, err := svc.GetProjectChat("missing", "1")
	assert.NoError(t, err)
	assert.Nil(t, chat)
}
