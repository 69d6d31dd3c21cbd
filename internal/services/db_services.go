package services

import (
	"context"

	"gorm.io/gorm"

	"chatforge/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
// Fields use plural names (e.g., Chats) to align with Go conventions
// seen in service/store containers.
type DbServices struct {
	Chats     ChatService
	Projects  ProjectService
	Workspace WorkspaceService
	Export    *ExportService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB) *DbServices {
	chatRepo := repositories.NewChatRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	projects := NewProjectService(projectRepo)
	chats := NewChatService(chatRepo, projects)
	workspace := NewWorkspaceService(projects, chats)

	return &DbServices{
		Chats:     chats,
		Projects:  projects,
		Workspace: workspace,
		Export:    NewExportService(chats, projects),
	}
}

// StartDbServices hands the application context to every service.
func (s *DbServices) StartDbServices(ctx context.Context) {
	s.Chats.Startup(ctx)
	s.Projects.Startup(ctx)
	s.Workspace.Startup(ctx)
	s.Export.Startup(ctx)
}
