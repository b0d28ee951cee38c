package service

import (
	"context"
	log "log/slog"

	"mysonai/internal/api/config"
	"mysonai/internal/api/dto"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/repository"
)

type UsageService interface {
	// CheckLimits gates a chat request. userID 0 means anonymous and is
	// never metered. A non-nil rejection means the caller must refuse.
	CheckLimits(ctx context.Context, userID uint64, plan string) (*dto.QuotaRejection, error)
	AddUsage(ctx context.Context, userID uint64, messages int64, tokens int64) error
	GetUsage(ctx context.Context, userID uint64, plan string) (*dto.UsageInfoDTO, error)
}

type UsageServiceImpl struct {
	usageRepo repository.UsageRepo
	cfg       *config.Config
}

func NewUsageService(usageRepo repository.UsageRepo, cfg *config.Config) UsageService {
	return &UsageServiceImpl{
		usageRepo: usageRepo,
		cfg:       cfg,
	}
}

func (s *UsageServiceImpl) CheckLimits(ctx context.Context, userID uint64, plan string) (*dto.QuotaRejection, error) {
	if userID == 0 {
		return nil, nil
	}

	limits := s.planLimits(plan)

	usage, err := s.usageRepo.GetUsageByUserID(ctx, userID)
	if err != nil {
		if s.cfg.Usage.StrictEnforcement {
			return nil, err
		}
		// fail open: a broken meter must not take the chat surface down
		log.WarnContext(ctx, "usage lookup failed, allowing request", "userID", userID, "err", err)
		return nil, nil
	}
	if usage == nil {
		return nil, nil
	}

	// message limit is checked before the token limit
	if limits.Messages != consts.UnlimitedQuota && usage.TotalMessages >= limits.Messages {
		return &dto.QuotaRejection{
			Error:           "Aylık mesaj limitinize ulaştınız.",
			LimitType:       "messages",
			Current:         usage.TotalMessages,
			Limit:           limits.Messages,
			UpgradeRequired: true,
		}, nil
	}

	if limits.Tokens != consts.UnlimitedQuota && usage.TotalTokens >= limits.Tokens {
		return &dto.QuotaRejection{
			Error:           "Aylık token limitinize ulaştınız.",
			LimitType:       "tokens",
			Current:         usage.TotalTokens,
			Limit:           limits.Tokens,
			UpgradeRequired: true,
		}, nil
	}

	return nil, nil
}

func (s *UsageServiceImpl) AddUsage(ctx context.Context, userID uint64, messages int64, tokens int64) error {
	if userID == 0 {
		return nil
	}
	return s.usageRepo.AddUsage(ctx, userID, messages, tokens)
}

func (s *UsageServiceImpl) GetUsage(ctx context.Context, userID uint64, plan string) (*dto.UsageInfoDTO, error) {
	usage, err := s.usageRepo.GetUsageByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return nil, ErrUserNotFound
	}

	limits := s.planLimits(plan)
	return &dto.UsageInfoDTO{
		Plan:          plan,
		TotalMessages: usage.TotalMessages,
		TotalTokens:   usage.TotalTokens,
		MessageLimit:  limits.Messages,
		TokenLimit:    limits.Tokens,
		PeriodStart:   usage.PeriodStart.Format("2006-01-02"),
	}, nil
}

// planLimits resolves configured limits, falling back to the built-in
// defaults. Unknown plans are treated as free.
func (s *UsageServiceImpl) planLimits(plan string) config.PlanLimits {
	plans := s.cfg.Plans
	if len(plans) == 0 {
		plans = config.DefaultPlans()
	}

	if limits, ok := plans[plan]; ok {
		return limits
	}
	if limits, ok := plans[consts.PlanFree]; ok {
		return limits
	}
	return config.DefaultPlans()[consts.PlanFree]
}
