package job

import (
	"context"
	log "log/slog"
	"time"

	"mysonai/internal/api/config"
	"mysonai/internal/api/dto"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/llm"
	"mysonai/internal/pkg/logger"
	"mysonai/internal/pkg/redis"
	"mysonai/internal/repository"
	"mysonai/internal/service"

	"github.com/google/uuid"
)

// AutoBlogJob drafts and publishes one AI-written article per scheduled run,
// cycling through the configured topic list.
type AutoBlogJob struct {
	blogSvc  service.BlogService
	blogRepo repository.BlogRepo
	cfg      *config.Config
}

func NewAutoBlogJob(blogSvc service.BlogService, blogRepo repository.BlogRepo, cfg *config.Config) *AutoBlogJob {
	return &AutoBlogJob{
		blogSvc:  blogSvc,
		blogRepo: blogRepo,
		cfg:      cfg,
	}
}

func (s *AutoBlogJob) Run() {
	traceID := "job-blog-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	autoCfg := s.cfg.AutoBlog
	if !autoCfg.Enable || len(autoCfg.Topics) == 0 {
		return
	}
	if !llm.Configured() {
		log.InfoContext(ctx, "auto blog skipped, no model configured")
		return
	}

	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.AutoBlogLock, lockValue, time.Minute*10, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.AutoBlogLock, lockValue)

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// The lock only covers concurrent runs; a restart after publish would
	// otherwise produce a second article the same day.
	published, err := s.blogRepo.CountPublishedSince(ctx, dayStart)
	if err != nil {
		log.ErrorContext(ctx, "auto blog publish count failed", "err", err)
		return
	}
	if published > 0 {
		log.InfoContext(ctx, "auto blog skipped, already published today", "count", published)
		return
	}

	topic := autoCfg.Topics[now.YearDay()%len(autoCfg.Topics)]

	genDTO := &dto.GenerateBlogPostDTO{Topic: topic}
	if len(autoCfg.SourceURLs) > 0 {
		genDTO.SourceURL = autoCfg.SourceURLs[now.YearDay()%len(autoCfg.SourceURLs)]
	}

	// authorID 0 marks system-authored posts
	draft, err := s.blogSvc.GenerateDraft(ctx, 0, genDTO)
	if err != nil {
		log.ErrorContext(ctx, "auto blog generation failed", "topic", topic, "err", err)
		return
	}

	if err = s.blogSvc.Publish(ctx, draft.ID); err != nil {
		log.ErrorContext(ctx, "auto blog publish failed", "id", draft.ID, "err", err)
		return
	}

	log.InfoContext(ctx, "auto blog post published", "id", draft.ID, "slug", draft.Slug, "topic", topic)
}
