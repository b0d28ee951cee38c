package service

import (
	"context"
	"time"

	"mysonai/internal/api/dto"
	"mysonai/internal/model"
	"mysonai/internal/repository"
)

type ContactService interface {
	Submit(ctx context.Context, contactDTO *dto.ContactDTO) error
	GetMessage(ctx context.Context, id uint64) (*dto.ContactMessageDTO, error)
	ListMessages(ctx context.Context, page int, size int, unreadOnly bool) ([]*dto.ContactMessageDTO, int64, error)
	MarkRead(ctx context.Context, id uint64) error
}

type ContactServiceImpl struct {
	contactRepo repository.ContactRepo
}

func NewContactService(contactRepo repository.ContactRepo) ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

func (s *ContactServiceImpl) Submit(ctx context.Context, contactDTO *dto.ContactDTO) error {
	message := &model.ContactMessage{
		Name:    contactDTO.Name,
		Email:   contactDTO.Email,
		Subject: contactDTO.Subject,
		Message: contactDTO.Message,
	}
	return s.contactRepo.CreateMessage(ctx, message)
}

func (s *ContactServiceImpl) GetMessage(ctx context.Context, id uint64) (*dto.ContactMessageDTO, error) {
	message, err := s.contactRepo.GetMessageById(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrContactNotFound
	}
	return toContactMessageDTO(message), nil
}

func (s *ContactServiceImpl) ListMessages(ctx context.Context, page int, size int, unreadOnly bool) ([]*dto.ContactMessageDTO, int64, error) {
	page, size = normalizePage(page, size)

	messages, total, err := s.contactRepo.ListMessages(ctx, page, size, unreadOnly)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*dto.ContactMessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, toContactMessageDTO(m))
	}
	return dtos, total, nil
}

func toContactMessageDTO(m *model.ContactMessage) *dto.ContactMessageDTO {
	return &dto.ContactMessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func (s *ContactServiceImpl) MarkRead(ctx context.Context, id uint64) error {
	rows, err := s.contactRepo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrContactNotFound
	}
	return nil
}
