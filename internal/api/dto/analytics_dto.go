package dto

// DailyUsageDTO one day of platform usage.
type DailyUsageDTO struct {
	Date        string `json:"date"`
	Messages    int64  `json:"messages"`
	Tokens      int64  `json:"tokens"`
	ActiveUsers int64  `json:"active_users"`
}

// UsageInfoDTO current meter state for the signed-in user.
type UsageInfoDTO struct {
	Plan          string `json:"plan"`
	TotalMessages int64  `json:"total_messages"`
	TotalTokens   int64  `json:"total_tokens"`
	MessageLimit  int64  `json:"message_limit"`
	TokenLimit    int64  `json:"token_limit"`
	PeriodStart   string `json:"period_start"`
}

// PlanLimitDTO plan-limit table row for the admin settings view.
type PlanLimitDTO struct {
	Plan     string `json:"plan"`
	Messages int64  `json:"messages"`
	Tokens   int64  `json:"tokens"`
}
