package repository

import (
	"context"
	"errors"

	"mysonai/internal/model"

	"gorm.io/gorm"
)

type ContactRepo interface {
	CreateMessage(ctx context.Context, message *model.ContactMessage) error
	GetMessageById(ctx context.Context, id uint64) (*model.ContactMessage, error)
	ListMessages(ctx context.Context, page int, size int, unreadOnly bool) ([]*model.ContactMessage, int64, error)
	MarkRead(ctx context.Context, id uint64) (int64, error)
}

type ContactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &ContactRepoImpl{db: db}
}

func (s *ContactRepoImpl) CreateMessage(ctx context.Context, message *model.ContactMessage) error {
	result := s.db.WithContext(ctx).Create(message)
	return result.Error
}

func (s *ContactRepoImpl) GetMessageById(ctx context.Context, id uint64) (*model.ContactMessage, error) {
	message := &model.ContactMessage{}
	result := s.db.WithContext(ctx).First(message, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return message, nil
}

func (s *ContactRepoImpl) ListMessages(ctx context.Context, page int, size int, unreadOnly bool) ([]*model.ContactMessage, int64, error) {
	var messages []*model.ContactMessage
	var total int64

	query := s.db.WithContext(ctx).Model(&model.ContactMessage{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	result := query.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&messages)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return messages, total, nil
}

func (s *ContactRepoImpl) MarkRead(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
