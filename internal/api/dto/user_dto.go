package dto

// RegisterDTO signup request.
type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// CredentialDTO login request.
type CredentialDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// UserInfoDTO profile response.
type UserInfoDTO struct {
	ID        uint64   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Plan      string   `json:"plan"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at"`
}

// TokenDTO login response.
type TokenDTO struct {
	Token string      `json:"token"`
	User  UserInfoDTO `json:"user"`
}

// UpdatePlanDTO admin plan change.
type UpdatePlanDTO struct {
	UserID uint64 `json:"user_id" binding:"required"`
	Plan   string `json:"plan" binding:"required,oneof=free pro enterprise"`
}
