package util

import (
	"mysonai/internal/api/dto"
)

// ValidateLoginDTO requires at least one identifier alongside the password.
func ValidateLoginDTO(dto *dto.CredentialDTO) bool {
	if dto.Username == "" && dto.Email == "" {
		return false
	}
	return dto.Password != ""
}
