package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chatforge/internal/events"
	"chatforge/internal/models"
	"chatforge/internal/repositories"
)

// FeatureRegistrar is the slice of the project service the chat service
// needs to attach a freshly created chat to a project.
type FeatureRegistrar interface {
	UpsertFeature(projectID string, feature models.Feature) error
}

type ChatService interface {
	Startup(ctx context.Context)
	// SetMessages writes (or fully overwrites) the chat document. urlID and
	// timestamp are optional; an empty timestamp defaults to now, a non-empty
	// one must parse as RFC 3339.
	SetMessages(id string, messages []models.Message, urlID, description, timestamp string) error
	GetByID(id string) (*models.Chat, error)
	GetByURLID(urlID string) (*models.Chat, error)
	// GetMessages resolves ref first as a primary id, then as a slug, because
	// external links may carry either.
	GetMessages(ref string) (*models.Chat, error)
	GetAll() ([]models.Chat, error)
	DeleteByID(id string) error
	// Fork creates a new chat holding the source's messages up to and
	// including messageID, and returns the new chat's slug.
	Fork(ref, messageID string) (string, error)
	// Duplicate creates a full copy of the source chat and returns the new
	// chat's slug.
	Duplicate(ref string) (string, error)
	// CreateFromMessages allocates an id, resolves a slug from it, writes the
	// chat, and returns the slug. A non-empty projectID also registers the
	// chat as a feature on that project.
	CreateFromMessages(description string, messages []models.Message, projectID string) (string, error)
	UpdateDescription(id, description string) error
}

type chatService struct {
	repo     repositories.ChatRepository
	projects FeatureRegistrar
	ctx      context.Context
}

func NewChatService(repo repositories.ChatRepository, projects FeatureRegistrar) ChatService {
	return &chatService{repo: repo, projects: projects}
}

func (s *chatService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *chatService) SetMessages(id string, messages []models.Message, urlID, description, timestamp string) error {
	if id == "" {
		return fmt.Errorf("%w: chat id is required", ErrValidation)
	}

	ts := time.Now()
	if timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return fmt.Errorf("%w: invalid timestamp %q", ErrValidation, timestamp)
		}
		ts = parsed
	}

	chat := &models.Chat{
		ID:          id,
		Description: description,
		Messages:    messages,
		Timestamp:   ts,
	}
	if urlID != "" {
		chat.URLID = &urlID
	}

	if err := s.repo.Put(s.ctx, chat); err != nil {
		return fmt.Errorf("service: set messages for chat %s: %w", id, err)
	}
	events.Emit(s.ctx, "chats:changed", events.StoreEvent{Type: events.EventUpdated, Collection: "chats", Key: id})
	return nil
}

func (s *chatService) GetByID(id string) (*models.Chat, error) {
	chat, err := s.repo.GetByID(s.ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get chat %s: %w", id, err)
	}
	return chat, nil
}

func (s *chatService) GetByURLID(urlID string) (*models.Chat, error) {
	chat, err := s.repo.GetByURLID(s.ctx, urlID)
	if err != nil {
		return nil, fmt.Errorf("service: get chat by url id %s: %w", urlID, err)
	}
	return chat, nil
}

func (s *chatService) GetMessages(ref string) (*models.Chat, error) {
	chat, err := s.GetByID(ref)
	if err != nil || chat != nil {
		return chat, err
	}
	return s.GetByURLID(ref)
}

func (s *chatService) GetAll() ([]models.Chat, error) {
	chats, err := s.repo.GetAll(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list chats: %w", err)
	}
	return chats, nil
}

func (s *chatService) DeleteByID(id string) error {
	if err := s.repo.Delete(s.ctx, id); err != nil {
		return fmt.Errorf("service: delete chat %s: %w", id, err)
	}
	events.Emit(s.ctx, "chats:changed", events.StoreEvent{Type: events.EventDeleted, Collection: "chats", Key: id})
	return nil
}

func (s *chatService) Fork(ref, messageID string) (string, error) {
	chat, err := s.GetMessages(ref)
	if err != nil {
		return "", err
	}
	if chat == nil {
		return "", fmt.Errorf("%w: chat %s", ErrNotFound, ref)
	}

	cut := -1
	for i, m := range chat.Messages {
		if m.ID == messageID {
			cut = i
			break
		}
	}
	if cut < 0 {
		return "", fmt.Errorf("%w: message %s in chat %s", ErrNotFound, messageID, ref)
	}

	messages := make([]models.Message, cut+1)
	copy(messages, chat.Messages[:cut+1])

	description := "Forked chat"
	if chat.Description != "" {
		description = chat.Description + " (fork)"
	}
	return s.CreateFromMessages(description, messages, "")
}

func (s *chatService) Duplicate(ref string) (string, error) {
	chat, err := s.GetMessages(ref)
	if err != nil {
		return "", err
	}
	if chat == nil {
		return "", fmt.Errorf("%w: chat %s", ErrNotFound, ref)
	}

	messages := make([]models.Message, len(chat.Messages))
	copy(messages, chat.Messages)

	description := "Chat (copy)"
	if chat.Description != "" {
		description = chat.Description + " (copy)"
	}
	return s.CreateFromMessages(description, messages, "")
}

func (s *chatService) CreateFromMessages(description string, messages []models.Message, projectID string) (string, error) {
	var urlID string
	err := s.repo.Transaction(s.ctx, func(txRepo repositories.ChatRepository) error {
		id, err := nextChatID(s.ctx, txRepo)
		if err != nil {
			return err
		}
		urlID, err = resolveURLID(s.ctx, txRepo, id)
		if err != nil {
			return err
		}
		return txRepo.Put(s.ctx, &models.Chat{
			ID:          id,
			URLID:       &urlID,
			Description: description,
			Messages:    messages,
			Timestamp:   time.Now(),
		})
	})
	if err != nil {
		return "", fmt.Errorf("service: create chat: %w", err)
	}
	events.Emit(s.ctx, "chats:changed", events.StoreEvent{Type: events.EventCreated, Collection: "chats", Key: urlID})

	if projectID != "" && s.projects != nil {
		chat, err := s.GetByURLID(urlID)
		if err != nil {
			return "", err
		}
		if err := s.projects.UpsertFeature(projectID, models.Feature{ID: chat.ID, Name: description}); err != nil {
			return "", fmt.Errorf("service: register chat on project %s: %w", projectID, err)
		}
	}
	return urlID, nil
}

func (s *chatService) UpdateDescription(id, description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}

	chat, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if chat == nil {
		return fmt.Errorf("%w: chat %s", ErrNotFound, id)
	}

	chat.Description = description
	if err := s.repo.Put(s.ctx, chat); err != nil {
		return fmt.Errorf("service: update description of chat %s: %w", id, err)
	}
	events.Emit(s.ctx, "chats:changed", events.StoreEvent{Type: events.EventUpdated, Collection: "chats", Key: id})
	return nil
}
