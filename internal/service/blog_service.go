package service

import (
	"context"
	"fmt"
	"io"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"mysonai/internal/api/dto"
	"mysonai/internal/model"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/es"
	"mysonai/internal/pkg/llm"
	"mysonai/internal/pkg/minio"
	"mysonai/internal/pkg/redis"
	"mysonai/internal/pkg/util"
	"mysonai/internal/repository"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	blogCacheTTL    = 10 * time.Minute
	defaultPageSize = 10
	maxPageSize     = 50
)

const draftSystemPrompt = `Sen MySonAI blogu için yazan deneyimli bir teknoloji yazarısın.
Türkçe, akıcı ve bilgilendirici blog yazıları üretirsin.
Çıktıyı şu biçimde ver: ilk satır başlık, ikinci satır tek cümlelik özet, ardından makale gövdesi (Markdown).`

type BlogService interface {
	ListPublished(ctx context.Context, page int, size int) ([]*dto.BlogPostDTO, int64, error)
	GetBySlug(ctx context.Context, slug string) (*dto.BlogPostDTO, error)
	Search(ctx context.Context, searchDTO *dto.BlogSearchDTO) ([]*dto.BlogPostDTO, error)
	ListAll(ctx context.Context, page int, size int) ([]*dto.BlogPostDTO, int64, error)
	Create(ctx context.Context, authorID uint64, createDTO *dto.CreateBlogPostDTO) (*dto.BlogPostDTO, error)
	Update(ctx context.Context, id uint64, createDTO *dto.CreateBlogPostDTO) error
	Delete(ctx context.Context, id uint64) error
	Publish(ctx context.Context, id uint64) error
	GenerateDraft(ctx context.Context, authorID uint64, genDTO *dto.GenerateBlogPostDTO) (*dto.BlogPostDTO, error)
	UploadCover(ctx context.Context, id uint64, reader io.Reader) (string, error)
}

type BlogServiceImpl struct {
	blogRepo   repository.BlogRepo
	searchRepo es.BlogSearchRepo
	webTools   *llm.WebTools
}

func NewBlogService(blogRepo repository.BlogRepo, searchRepo es.BlogSearchRepo, webTools *llm.WebTools) BlogService {
	return &BlogServiceImpl{
		blogRepo:   blogRepo,
		searchRepo: searchRepo,
		webTools:   webTools,
	}
}

func (s *BlogServiceImpl) ListPublished(ctx context.Context, page int, size int) ([]*dto.BlogPostDTO, int64, error) {
	page, size = normalizePage(page, size)

	cacheKey := consts.BlogListKey + strconv.Itoa(page) + ":" + strconv.Itoa(size)
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var payload cachedBlogList
		if err = json.Unmarshal([]byte(cached), &payload); err == nil {
			return payload.Posts, payload.Total, nil
		}
	}

	posts, total, err := s.blogRepo.ListPublished(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*dto.BlogPostDTO, 0, len(posts))
	for _, p := range posts {
		item := toBlogPostDTO(p)
		item.Content = "" // list view stays light
		dtos = append(dtos, item)
	}

	if payload, err := json.Marshal(cachedBlogList{Posts: dtos, Total: total}); err == nil {
		_ = redis.SetWithExpiration(ctx, cacheKey, string(payload), blogCacheTTL)
	}

	return dtos, total, nil
}

func (s *BlogServiceImpl) GetBySlug(ctx context.Context, slug string) (*dto.BlogPostDTO, error) {
	cacheKey := consts.BlogPostKey + slug
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		var item dto.BlogPostDTO
		if err = json.Unmarshal([]byte(cached), &item); err == nil {
			return &item, nil
		}
	}

	post, err := s.blogRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != consts.BlogStatusPublished {
		return nil, ErrBlogPostNotFound
	}

	item := toBlogPostDTO(post)
	if payload, err := json.Marshal(item); err == nil {
		_ = redis.SetWithExpiration(ctx, cacheKey, string(payload), blogCacheTTL)
	}

	return item, nil
}

func (s *BlogServiceImpl) Search(ctx context.Context, searchDTO *dto.BlogSearchDTO) ([]*dto.BlogPostDTO, error) {
	size := searchDTO.Size
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}

	var hits []*es.BlogES
	var err error
	switch {
	case searchDTO.Tag != "":
		hits, err = s.searchRepo.SearchByTag(ctx, searchDTO.Tag, searchDTO.From, size)
	case searchDTO.Query != "":
		hits, err = s.searchRepo.Search(ctx, searchDTO.Query, searchDTO.From, size)
	default:
		return nil, ErrParamInvalid
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]*dto.BlogPostDTO, 0, len(hits))
	for _, h := range hits {
		dtos = append(dtos, &dto.BlogPostDTO{
			ID:          h.ID,
			Slug:        h.Slug,
			Title:       h.Title,
			Summary:     h.Summary,
			Tags:        h.Tags,
			AIGenerated: h.AIGenerated,
			PublishedAt: h.PublishedAt.Format(time.RFC3339),
		})
	}
	return dtos, nil
}

func (s *BlogServiceImpl) ListAll(ctx context.Context, page int, size int) ([]*dto.BlogPostDTO, int64, error) {
	page, size = normalizePage(page, size)

	posts, total, err := s.blogRepo.ListAll(ctx, page, size)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*dto.BlogPostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toBlogPostDTO(p))
	}
	return dtos, total, nil
}

func (s *BlogServiceImpl) Create(ctx context.Context, authorID uint64, createDTO *dto.CreateBlogPostDTO) (*dto.BlogPostDTO, error) {
	existing, err := s.blogRepo.GetPostBySlug(ctx, createDTO.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBlogSlugExist
	}

	post := &model.BlogPost{
		Slug:     createDTO.Slug,
		Title:    createDTO.Title,
		Summary:  createDTO.Summary,
		Content:  createDTO.Content,
		Tags:     util.JoinTags(createDTO.Tags),
		Status:   createDTO.Status,
		AuthorID: authorID,
	}
	if post.Status == consts.BlogStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err = s.blogRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.syncSearchIndex(ctx, post)
	s.invalidateListCache(ctx)

	return toBlogPostDTO(post), nil
}

func (s *BlogServiceImpl) Update(ctx context.Context, id uint64, createDTO *dto.CreateBlogPostDTO) error {
	post, err := s.blogRepo.GetPostById(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrBlogPostNotFound
	}

	post.Slug = createDTO.Slug
	post.Title = createDTO.Title
	post.Summary = createDTO.Summary
	post.Content = createDTO.Content
	post.Tags = util.JoinTags(createDTO.Tags)
	post.Status = createDTO.Status
	if post.Status == consts.BlogStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err = s.blogRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	s.syncSearchIndex(ctx, post)
	_ = redis.DeleteKey(ctx, consts.BlogPostKey+post.Slug)
	s.invalidateListCache(ctx)
	return nil
}

func (s *BlogServiceImpl) Delete(ctx context.Context, id uint64) error {
	post, err := s.blogRepo.GetPostById(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrBlogPostNotFound
	}

	if err = s.blogRepo.DeletePost(ctx, id); err != nil {
		return err
	}

	if err = s.searchRepo.DeletePost(ctx, id); err != nil {
		log.WarnContext(ctx, "failed to remove post from search index", "id", id, "err", err)
	}
	_ = redis.DeleteKey(ctx, consts.BlogPostKey+post.Slug)
	s.invalidateListCache(ctx)
	return nil
}

func (s *BlogServiceImpl) Publish(ctx context.Context, id uint64) error {
	post, err := s.blogRepo.GetPostById(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrBlogPostNotFound
	}

	now := time.Now()
	if err = s.blogRepo.UpdatePostStatus(ctx, id, consts.BlogStatusPublished, &now); err != nil {
		return err
	}

	post.Status = consts.BlogStatusPublished
	post.PublishedAt = &now
	s.syncSearchIndex(ctx, post)
	s.invalidateListCache(ctx)
	return nil
}

// GenerateDraft asks the model for a full article and stores it as a draft
// for human review. Nothing goes live without the publish step.
func (s *BlogServiceImpl) GenerateDraft(ctx context.Context, authorID uint64, genDTO *dto.GenerateBlogPostDTO) (*dto.BlogPostDTO, error) {
	userPrompt := fmt.Sprintf("Konu: %s", genDTO.Topic)

	if genDTO.SourceURL != "" && s.webTools != nil {
		article, err := s.webTools.FetchArticle(ctx, genDTO.SourceURL)
		if err != nil {
			log.WarnContext(ctx, "failed to fetch source article", "url", genDTO.SourceURL, "err", err)
		} else if article != "" {
			userPrompt += "\n\nKaynak materyal:\n" + article
		}
	}

	raw, err := llm.GenerateText(ctx, draftSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	title, summary, content := splitDraft(raw, genDTO.Topic)

	post := &model.BlogPost{
		Slug:        uniqueSlug(title),
		Title:       title,
		Summary:     summary,
		Content:     content,
		Tags:        "yapay-zeka",
		Status:      consts.BlogStatusDraft,
		AIGenerated: true,
		AuthorID:    authorID,
	}

	if err = s.blogRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return toBlogPostDTO(post), nil
}

func (s *BlogServiceImpl) UploadCover(ctx context.Context, id uint64, reader io.Reader) (string, error) {
	post, err := s.blogRepo.GetPostById(ctx, id)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", ErrBlogPostNotFound
	}

	objectName := fmt.Sprintf("covers/%d-%s.jpg", id, uuid.NewString())
	key, err := minio.UploadCover(ctx, objectName, reader)
	if err != nil {
		return "", err
	}

	oldCover := minio.ObjectNameFromURL(post.CoverURL)

	post.CoverURL = minio.GetPublicURL(key)
	if err = s.blogRepo.UpdatePost(ctx, post); err != nil {
		return "", err
	}

	if oldCover != "" {
		if err = minio.DeleteFile(ctx, oldCover); err != nil {
			log.WarnContext(ctx, "failed to delete previous cover", "object", oldCover, "err", err)
		}
	}

	_ = redis.DeleteKey(ctx, consts.BlogPostKey+post.Slug)
	return post.CoverURL, nil
}

// syncSearchIndex mirrors published posts into Elasticsearch, best effort.
func (s *BlogServiceImpl) syncSearchIndex(ctx context.Context, post *model.BlogPost) {
	if post.Status != consts.BlogStatusPublished {
		if err := s.searchRepo.DeletePost(ctx, post.ID); err != nil {
			log.WarnContext(ctx, "failed to remove post from search index", "id", post.ID, "err", err)
		}
		return
	}

	doc := &es.BlogES{
		ID:          post.ID,
		Slug:        post.Slug,
		Title:       post.Title,
		Summary:     post.Summary,
		Content:     post.Content,
		Tags:        util.SplitTags(post.Tags),
		AIGenerated: post.AIGenerated,
	}
	if post.PublishedAt != nil {
		doc.PublishedAt = *post.PublishedAt
	}

	if err := s.searchRepo.IndexPost(ctx, doc); err != nil {
		log.WarnContext(ctx, "failed to index post", "id", post.ID, "err", err)
	}
}

func (s *BlogServiceImpl) invalidateListCache(ctx context.Context) {
	// pages are few and short lived, invalidate the first ones eagerly
	for page := 1; page <= 5; page++ {
		_ = redis.DeleteKey(ctx, consts.BlogListKey+strconv.Itoa(page)+":"+strconv.Itoa(defaultPageSize))
	}
}

type cachedBlogList struct {
	Posts []*dto.BlogPostDTO `json:"posts"`
	Total int64              `json:"total"`
}

func toBlogPostDTO(post *model.BlogPost) *dto.BlogPostDTO {
	item := &dto.BlogPostDTO{}
	_ = copier.Copy(item, post)
	// copier skips the mismatched fields, fill them explicitly
	item.Tags = util.SplitTags(post.Tags)
	item.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	if post.PublishedAt != nil {
		item.PublishedAt = post.PublishedAt.Format(time.RFC3339)
	}
	return item
}

func normalizePage(page int, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	return page, size
}

// uniqueSlug suffixes the slug so repeated AI drafts on the same topic never
// collide on the unique index.
func uniqueSlug(title string) string {
	return util.Slugify(title) + "-" + uuid.NewString()[:8]
}

// splitDraft parses the model output convention: title line, summary line,
// then the body. Falls back to the topic when the output is malformed.
func splitDraft(raw string, topic string) (title string, summary string, content string) {
	lines := strings.SplitN(strings.TrimSpace(raw), "\n", 3)

	title = topic
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		title = strings.TrimSpace(strings.TrimPrefix(lines[0], "# "))
	}
	if len(lines) > 1 {
		summary = strings.TrimSpace(lines[1])
	}
	if len(lines) > 2 {
		content = strings.TrimSpace(lines[2])
	} else {
		content = raw
	}
	return title, summary, content
}
