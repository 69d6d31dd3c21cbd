package mocks

import (
	"context"

	"chatforge/internal/models"
	"chatforge/internal/repositories"
)

type ChatRepositoryMock struct {
	PutFunc         func(ctx context.Context, chat *models.Chat) error
	GetByIDFunc     func(ctx context.Context, id string) (*models.Chat, error)
	GetByURLIDFunc  func(ctx context.Context, urlID string) (*models.Chat, error)
	GetAllFunc      func(ctx context.Context) ([]models.Chat, error)
	IDsFunc         func(ctx context.Context) ([]string, error)
	URLIDsFunc      func(ctx context.Context) ([]string, error)
	DeleteFunc      func(ctx context.Context, id string) error
	TransactionFunc func(ctx context.Context, fn func(txRepo repositories.ChatRepository) error) error
}

func (m *ChatRepositoryMock) Put(ctx context.Context, chat *models.Chat) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, chat)
	}
	return nil
}

func (m *ChatRepositoryMock) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *ChatRepositoryMock) GetByURLID(ctx context.Context, urlID string) (*models.Chat, error) {
	if m.GetByURLIDFunc != nil {
		return m.GetByURLIDFunc(ctx, urlID)
	}
	return nil, nil
}

func (m *ChatRepositoryMock) GetAll(ctx context.Context) ([]models.Chat, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []models.Chat{}, nil
}

func (m *ChatRepositoryMock) IDs(ctx context.Context) ([]string, error) {
	if m.IDsFunc != nil {
		return m.IDsFunc(ctx)
	}
	return []string{}, nil
}

func (m *ChatRepositoryMock) URLIDs(ctx context.Context) ([]string, error) {
	if m.URLIDsFunc != nil {
		return m.URLIDsFunc(ctx)
	}
	return []string{}, nil
}

func (m *ChatRepositoryMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *ChatRepositoryMock) Transaction(ctx context.Context, fn func(txRepo repositories.ChatRepository) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(m)
}
