package service

import (
	"errors"

	"mysonai/internal/api/dto"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	QuotaExceeded       = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("invalid parameters")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserBan                 = errors.New("user is banned")
	ErrUserExist               = errors.New("user already exists")
	ErrUserUsernameExist       = errors.New("username already taken")
	ErrPasswordIncorrect       = errors.New("incorrect password")
	ErrMissingLoginCredentials = errors.New("missing login credentials")
	ErrAgentNotFound           = errors.New("Selected agent not found")
	ErrQuotaExceeded           = errors.New("usage limit reached")
	ErrPromptRejected          = errors.New("message rejected by safety validation")
	ErrBlogPostNotFound        = errors.New("blog post not found")
	ErrBlogSlugExist           = errors.New("blog slug already exists")
	ErrContactNotFound         = errors.New("contact message not found")
	ErrConversationNotFound    = errors.New("conversation not found")
	ErrFileNotSupported        = errors.New("unsupported file type")
	UnauthorizedError          = errors.New("insufficient permissions")
	UnExpectedError            = errors.New("unexpected error, please retry later")
)

// QuotaExceededError wraps ErrQuotaExceeded with the structured
// rejection body the client renders as an upgrade prompt.
type QuotaExceededError struct {
	Rejection *dto.QuotaRejection
}

func (e *QuotaExceededError) Error() string { return ErrQuotaExceeded.Error() }
func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// PromptRejectedError wraps ErrPromptRejected with the violations found.
type PromptRejectedError struct {
	Rejection *dto.SafetyRejection
}

func (e *PromptRejectedError) Error() string { return ErrPromptRejected.Error() }
func (e *PromptRejectedError) Unwrap() error { return ErrPromptRejected }

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserBan:                 Unauthorized,
	ErrUserExist:               BadRequest,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrAgentNotFound:           BadRequest,
	ErrQuotaExceeded:           QuotaExceeded,
	ErrPromptRejected:          BadRequest,
	ErrBlogPostNotFound:        NotFound,
	ErrBlogSlugExist:           BadRequest,
	ErrContactNotFound:         NotFound,
	ErrConversationNotFound:    NotFound,
	ErrFileNotSupported:        BadRequest,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
