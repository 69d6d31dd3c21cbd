package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatforge/internal/models"
)

type ChatRepository interface {
	Put(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, id string) (*models.Chat, error)
	GetByURLID(ctx context.Context, urlID string) (*models.Chat, error)
	GetAll(ctx context.Context) ([]models.Chat, error)
	IDs(ctx context.Context) ([]string, error)
	URLIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
	// Transaction runs fn atomically; the allocate-id/resolve-slug/write
	// sequence uses it so two writers cannot observe the same next id.
	Transaction(ctx context.Context, fn func(txRepo ChatRepository) error) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Put writes the full document, replacing any existing row with the same id.
// The conflict target is the primary key only, so a url_id collision still
// raises the engine's uniqueness error instead of clobbering another chat.
func (r *chatRepository) Put(ctx context.Context, chat *models.Chat) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: chat %s", ErrDuplicate, chat.ID)
		}
		return fmt.Errorf("saving chat %s: %w", chat.ID, err)
	}
	return nil
}

func (r *chatRepository) GetByID(ctx context.Context, id string) (*models.Chat, error) {
	var chat models.Chat
	res := r.db.WithContext(ctx).Where("id = ?", id).Take(&chat)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting chat %s: %w", id, res.Error)
	}
	return &chat, nil
}

func (r *chatRepository) GetByURLID(ctx context.Context, urlID string) (*models.Chat, error) {
	var chat models.Chat
	res := r.db.WithContext(ctx).Where("url_id = ?", urlID).Take(&chat)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting chat by url id %s: %w", urlID, res.Error)
	}
	return &chat, nil
}

func (r *chatRepository) GetAll(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := r.db.WithContext(ctx).Find(&chats).Error; err != nil {
		return nil, fmt.Errorf("listing chats: %w", err)
	}
	return chats, nil
}

// IDs returns every primary key in the collection.
func (r *chatRepository) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.Chat{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("listing chat ids: %w", err)
	}
	return ids, nil
}

// URLIDs returns every slug currently in use.
func (r *chatRepository) URLIDs(ctx context.Context) ([]string, error) {
	var urlIDs []string
	err := r.db.WithContext(ctx).Model(&models.Chat{}).
		Where("url_id IS NOT NULL").
		Pluck("url_id", &urlIDs).Error
	if err != nil {
		return nil, fmt.Errorf("listing chat url ids: %w", err)
	}
	return urlIDs, nil
}

func (r *chatRepository) Transaction(ctx context.Context, fn func(txRepo ChatRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&chatRepository{db: tx})
	})
}

// Delete removes the document. Deleting an absent id is not an error.
func (r *chatRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Chat{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting chat %s: %w", id, err)
	}
	return nil
}
