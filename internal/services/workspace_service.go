package services

import (
	"context"
	"fmt"
	"sync"

	"chatforge/internal/models"
)

// WorkspaceService answers cross-collection questions by joining projects
// and chats in-process; the engine has no native join.
type WorkspaceService interface {
	Startup(ctx context.Context)
	// GetProjectChats returns one entry per feature of the project, in
	// feature order. A missing project yields an empty slice, not an error.
	// Features pointing at no chat keep a nil entry at their position so the
	// caller sees the dangling reference.
	GetProjectChats(projectID string) ([]*models.Chat, error)
	// GetProjectChat returns the chat behind one feature of the project, or
	// nil when the project, the feature, or the chat is missing.
	GetProjectChat(projectID, chatID string) (*models.Chat, error)
}

type workspaceService struct {
	projects ProjectService
	chats    ChatService
	ctx      context.Context
}

func NewWorkspaceService(projects ProjectService, chats ChatService) WorkspaceService {
	return &workspaceService{projects: projects, chats: chats}
}

func (s *workspaceService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *workspaceService) GetProjectChats(projectID string) ([]*models.Chat, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return []*models.Chat{}, nil
	}

	results := make([]*models.Chat, len(project.Features))
	errs := make([]error, len(project.Features))

	var wg sync.WaitGroup
	for i, feature := range project.Features {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i], errs[i] = s.chats.GetMessages(id)
		}(i, feature.ID)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("service: load chats of project %s: %w", projectID, err)
		}
	}
	return results, nil
}

func (s *workspaceService) GetProjectChat(projectID, chatID string) (*models.Chat, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}

	for _, feature := range project.Features {
		if feature.ID == chatID {
			return s.chats.GetMessages(chatID)
		}
	}
	return nil, nil
}
