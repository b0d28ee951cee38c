package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mysonai/internal/api/config"
	"mysonai/internal/model"
	"mysonai/internal/service"
)

type fakeUsageRepo struct {
	usage    *model.UserUsage
	getErr   error
	addCalls int
}

func (f *fakeUsageRepo) GetUsageByUserID(ctx context.Context, userID uint64) (*model.UserUsage, error) {
	return f.usage, f.getErr
}

func (f *fakeUsageRepo) AddUsage(ctx context.Context, userID uint64, messages int64, tokens int64) error {
	f.addCalls++
	return nil
}

func (f *fakeUsageRepo) ResetAllUsage(ctx context.Context, periodStart time.Time) (int64, error) {
	return 0, nil
}

func newUsageService(repo *fakeUsageRepo, strict bool) service.UsageService {
	cfg := &config.Config{
		Plans: config.DefaultPlans(),
	}
	cfg.Usage.StrictEnforcement = strict
	return service.NewUsageService(repo, cfg)
}

func TestCheckLimitsAnonymousNeverMetered(t *testing.T) {
	svc := newUsageService(&fakeUsageRepo{getErr: errors.New("must not be called")}, true)

	rejection, err := svc.CheckLimits(context.Background(), 0, "free")
	if err != nil || rejection != nil {
		t.Fatalf("anonymous request must pass, got rejection=%v err=%v", rejection, err)
	}
}

func TestCheckLimitsUnderQuota(t *testing.T) {
	repo := &fakeUsageRepo{usage: &model.UserUsage{TotalMessages: 10, TotalTokens: 1000}}
	svc := newUsageService(repo, false)

	rejection, err := svc.CheckLimits(context.Background(), 1, "free")
	if err != nil || rejection != nil {
		t.Fatalf("expected pass, got rejection=%v err=%v", rejection, err)
	}
}

func TestCheckLimitsMessageLimit(t *testing.T) {
	repo := &fakeUsageRepo{usage: &model.UserUsage{TotalMessages: 50, TotalTokens: 0}}
	svc := newUsageService(repo, false)

	rejection, err := svc.CheckLimits(context.Background(), 1, "free")
	if err != nil {
		t.Fatalf("CheckLimits failed: %v", err)
	}
	if rejection == nil || rejection.LimitType != "messages" {
		t.Fatalf("expected messages rejection, got %+v", rejection)
	}
	if rejection.Current != 50 || rejection.Limit != 50 || !rejection.UpgradeRequired {
		t.Fatalf("unexpected rejection payload: %+v", rejection)
	}
}

func TestCheckLimitsTokenLimit(t *testing.T) {
	repo := &fakeUsageRepo{usage: &model.UserUsage{TotalMessages: 10, TotalTokens: 50000}}
	svc := newUsageService(repo, false)

	rejection, err := svc.CheckLimits(context.Background(), 1, "free")
	if err != nil {
		t.Fatalf("CheckLimits failed: %v", err)
	}
	if rejection == nil || rejection.LimitType != "tokens" {
		t.Fatalf("expected tokens rejection, got %+v", rejection)
	}
}

func TestCheckLimitsMessagesBeforeTokens(t *testing.T) {
	// both limits exceeded: the message limit is reported
	repo := &fakeUsageRepo{usage: &model.UserUsage{TotalMessages: 50, TotalTokens: 50000}}
	svc := newUsageService(repo, false)

	rejection, _ := svc.CheckLimits(context.Background(), 1, "free")
	if rejection == nil || rejection.LimitType != "messages" {
		t.Fatalf("expected messages rejection first, got %+v", rejection)
	}
}

func TestCheckLimitsUnlimitedPlan(t *testing.T) {
	repo := &fakeUsageRepo{usage: &model.UserUsage{TotalMessages: 1 << 40, TotalTokens: 1 << 50}}
	svc := newUsageService(repo, false)

	rejection, err := svc.CheckLimits(context.Background(), 1, "enterprise")
	if err != nil || rejection != nil {
		t.Fatalf("enterprise must be unlimited, got rejection=%v err=%v", rejection, err)
	}
}

func TestCheckLimitsUnknownPlanFallsBackToFree(t *testing.T) {
	repo := &fakeUsageRepo{usage: &model.UserUsage{TotalMessages: 50}}
	svc := newUsageService(repo, false)

	rejection, _ := svc.CheckLimits(context.Background(), 1, "platinum")
	if rejection == nil || rejection.Limit != 50 {
		t.Fatalf("unknown plan must use free limits, got %+v", rejection)
	}
}

func TestCheckLimitsFailOpen(t *testing.T) {
	repo := &fakeUsageRepo{getErr: errors.New("db down")}
	svc := newUsageService(repo, false)

	rejection, err := svc.CheckLimits(context.Background(), 1, "free")
	if err != nil || rejection != nil {
		t.Fatalf("lookup failure must fail open, got rejection=%v err=%v", rejection, err)
	}
}

func TestCheckLimitsStrictEnforcement(t *testing.T) {
	lookupErr := errors.New("db down")
	svc := newUsageService(&fakeUsageRepo{getErr: lookupErr}, true)

	_, err := svc.CheckLimits(context.Background(), 1, "free")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("strict mode must surface the lookup error, got %v", err)
	}
}

func TestAddUsageSkipsAnonymous(t *testing.T) {
	repo := &fakeUsageRepo{}
	svc := newUsageService(repo, false)

	if err := svc.AddUsage(context.Background(), 0, 1, 100); err != nil {
		t.Fatalf("AddUsage failed: %v", err)
	}
	if repo.addCalls != 0 {
		t.Fatalf("anonymous usage must not hit the store, got %d calls", repo.addCalls)
	}

	if err := svc.AddUsage(context.Background(), 1, 1, 100); err != nil {
		t.Fatalf("AddUsage failed: %v", err)
	}
	if repo.addCalls != 1 {
		t.Fatalf("expected one store write, got %d", repo.addCalls)
	}
}

func TestGetUsage(t *testing.T) {
	periodStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeUsageRepo{usage: &model.UserUsage{
		TotalMessages: 12,
		TotalTokens:   3400,
		PeriodStart:   periodStart,
	}}
	svc := newUsageService(repo, false)

	info, err := svc.GetUsage(context.Background(), 1, "pro")
	if err != nil {
		t.Fatalf("GetUsage failed: %v", err)
	}
	if info.Plan != "pro" || info.TotalMessages != 12 || info.MessageLimit != 1000 {
		t.Fatalf("unexpected usage info: %+v", info)
	}
	if info.PeriodStart != "2026-08-01" {
		t.Fatalf("unexpected period start: %q", info.PeriodStart)
	}
}

func TestGetUsageUnknownUser(t *testing.T) {
	svc := newUsageService(&fakeUsageRepo{}, false)

	_, err := svc.GetUsage(context.Background(), 1, "free")
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
