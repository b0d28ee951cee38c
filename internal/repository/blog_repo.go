package repository

import (
	"context"
	"errors"
	"time"

	"mysonai/internal/model"
	"mysonai/internal/pkg/consts"

	"gorm.io/gorm"
)

type BlogRepo interface {
	GetPostById(ctx context.Context, id uint64) (*model.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	ListPublished(ctx context.Context, page int, size int) ([]*model.BlogPost, int64, error)
	ListAll(ctx context.Context, page int, size int) ([]*model.BlogPost, int64, error)
	CreatePost(ctx context.Context, post *model.BlogPost) error
	UpdatePost(ctx context.Context, post *model.BlogPost) error
	UpdatePostStatus(ctx context.Context, id uint64, status int8, publishedAt *time.Time) error
	DeletePost(ctx context.Context, id uint64) error
	CountPublishedSince(ctx context.Context, since time.Time) (int64, error)
}

type BlogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) BlogRepo {
	return &BlogRepoImpl{db: db}
}

func (s *BlogRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	result := s.db.WithContext(ctx).First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *BlogRepoImpl) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	result := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(post)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *BlogRepoImpl) ListPublished(ctx context.Context, page int, size int) ([]*model.BlogPost, int64, error) {
	var posts []*model.BlogPost
	var total int64

	query := s.db.WithContext(ctx).
		Model(&model.BlogPost{}).
		Where("status = ?", consts.BlogStatusPublished)

	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	result := query.
		Order("published_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return posts, total, nil
}

func (s *BlogRepoImpl) ListAll(ctx context.Context, page int, size int) ([]*model.BlogPost, int64, error) {
	var posts []*model.BlogPost
	var total int64

	query := s.db.WithContext(ctx).Model(&model.BlogPost{})

	if result := query.Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	result := query.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return posts, total, nil
}

func (s *BlogRepoImpl) CreatePost(ctx context.Context, post *model.BlogPost) error {
	result := s.db.WithContext(ctx).Create(post)
	return result.Error
}

func (s *BlogRepoImpl) UpdatePost(ctx context.Context, post *model.BlogPost) error {
	result := s.db.WithContext(ctx).Save(post)
	return result.Error
}

func (s *BlogRepoImpl) UpdatePostStatus(ctx context.Context, id uint64, status int8, publishedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if publishedAt != nil {
		updates["published_at"] = publishedAt
	}

	result := s.db.WithContext(ctx).
		Model(&model.BlogPost{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}

func (s *BlogRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).Delete(&model.BlogPost{}, id)
	return result.Error
}

func (s *BlogRepoImpl) CountPublishedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.BlogPost{}).
		Where("status = ? AND published_at >= ?", consts.BlogStatusPublished, since).
		Count(&count)
	return count, result.Error
}
