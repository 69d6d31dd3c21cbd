package main

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm/logger"

	"chatforge/internal/database"
	"chatforge/internal/services"
)

// App struct
type App struct {
	ctx       context.Context
	Chats     services.ChatService
	Projects  services.ProjectService
	Workspace services.WorkspaceService
	Export    *services.ExportService
	Git       *services.GitService
	Keyring   *services.KeyringService
	dbClose   func() error
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup opens the store and wires the services. The context is saved so
// services can observe application shutdown.
func (a *App) startup(ctx context.Context, dbPath string) error {
	a.ctx = ctx

	db, err := database.Init(database.Config{
		Path:     dbPath,
		LogLevel: logger.Info,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Wire services and inject only needed interfaces into App
	svc := services.NewDbServices(db)
	svc.StartDbServices(ctx)
	a.Chats = svc.Chats
	a.Projects = svc.Projects
	a.Workspace = svc.Workspace
	a.Export = svc.Export

	a.Keyring = services.NewKeyringService()
	a.Git = services.NewGitService(svc.Projects, a.Keyring)
	a.Git.Startup(ctx)

	// Capture DB close for graceful shutdown
	if sqlDB, err := db.DB(); err == nil {
		a.dbClose = sqlDB.Close
	}
	return nil
}

// shutdown closes the store.
func (a *App) shutdown() {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			log.Printf("closing database: %v", err)
		}
	}
}
