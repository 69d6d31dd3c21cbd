package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yargevad/filepathx"

	"chatforge/internal/models"
)

// Snapshot is the on-disk form of the two collections.
type Snapshot struct {
	Chats    []models.Chat    `json:"chats"`
	Projects []models.Project `json:"projects"`
}

// ExportService writes the store to JSON snapshot files and re-imports chats
// from them. Imported chats go through the normal allocation path so they
// get fresh ids and collision-free slugs.
type ExportService struct {
	chats    ChatService
	projects ProjectService
	ctx      context.Context
}

func NewExportService(chats ChatService, projects ProjectService) *ExportService {
	return &ExportService{chats: chats, projects: projects}
}

func (s *ExportService) Startup(ctx context.Context) {
	s.ctx = ctx
}

// ExportSnapshot writes both collections to path as a single JSON document.
func (s *ExportService) ExportSnapshot(path string) error {
	if path == "" {
		return fmt.Errorf("%w: export path is required", ErrValidation)
	}

	chats, err := s.chats.GetAll()
	if err != nil {
		return err
	}
	projects, err := s.projects.GetAll()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(Snapshot{Chats: chats, Projects: projects}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// ImportChats reads every snapshot file matching pattern (`**` globs are
// supported) and re-creates the chats it finds. Returns the slugs of the
// imported chats, in file-then-chat order.
func (s *ExportService) ImportChats(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: glob pattern is required", ErrValidation)
	}

	paths, err := filepathx.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}

	var slugs []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("%w: snapshot %s is not valid JSON", ErrValidation, path)
		}
		for _, chat := range snap.Chats {
			slug, err := s.chats.CreateFromMessages(chat.Description, chat.Messages, "")
			if err != nil {
				return nil, err
			}
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}
