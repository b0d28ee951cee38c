package service

import (
	"context"
	"time"

	"mysonai/internal/api/dto"
	"mysonai/internal/model"
	"mysonai/internal/pkg/consts"
	"mysonai/internal/pkg/redis"
	"mysonai/internal/pkg/security"
	"mysonai/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserInfoDTO, error)
	UpdatePlan(ctx context.Context, planDTO *dto.UpdatePlanDTO) error
	BanUser(ctx context.Context, id uint64) error
	UnBanUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	byUsername, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if byUsername != nil {
		return ErrUserUsernameExist
	}

	byEmail, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if byEmail != nil {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: &regDTO.Username,
		Email:    &regDTO.Email,
		Password: &passwordHash,
		Plan:     consts.PlanFree,
	}
	usage := &model.UserUsage{
		PeriodStart: monthStart(time.Now()),
	}
	roles := []*model.UserRole{{Role: "user"}}

	return s.userRepo.CreateUser(ctx, user, usage, roles)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.findUserByLoginCredentials(ctx, credDTO)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if user.Password == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credDTO.Password, *user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, roleNames(user))
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{
		Token: token,
		User:  toUserInfoDTO(user),
	}, nil
}

// Logout blacklists the token signature until it would have expired anyway.
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserInfoDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	info := toUserInfoDTO(user)
	return &info, nil
}

func (s *UserServiceImpl) UpdatePlan(ctx context.Context, planDTO *dto.UpdatePlanDTO) error {
	user, err := s.userRepo.GetUserById(ctx, planDTO.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.UpdateUserPlan(ctx, planDTO.UserID, planDTO.Plan)
}

func (s *UserServiceImpl) BanUser(ctx context.Context, id uint64) error {
	return s.changeUserIsBanStatus(ctx, id, true)
}

func (s *UserServiceImpl) UnBanUser(ctx context.Context, id uint64) error {
	return s.changeUserIsBanStatus(ctx, id, false)
}

func (s *UserServiceImpl) changeUserIsBanStatus(ctx context.Context, id uint64, isBan bool) error {
	rows, err := s.userRepo.UpdateUserIsBan(ctx, id, isBan)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserServiceImpl) findUserByLoginCredentials(ctx context.Context, credDTO *dto.CredentialDTO) (*model.User, error) {
	if credDTO.Username != "" {
		return s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	}
	if credDTO.Email != "" {
		return s.userRepo.GetUserByEmail(ctx, credDTO.Email)
	}
	return nil, ErrMissingLoginCredentials
}

func roleNames(user *model.User) []string {
	names := make([]string, 0, len(user.UserRoles))
	for _, r := range user.UserRoles {
		names = append(names, r.Role)
	}
	return names
}

func toUserInfoDTO(user *model.User) dto.UserInfoDTO {
	username := ""
	if user.Username != nil {
		username = *user.Username
	}
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	return dto.UserInfoDTO{
		ID:        user.ID,
		Username:  username,
		Email:     email,
		Plan:      user.Plan,
		Roles:     roleNames(user),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// monthStart normalizes a metering period boundary to UTC midnight on the 1st.
func monthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
