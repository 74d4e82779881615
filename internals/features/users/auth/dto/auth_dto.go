package dto

import userDTO "autismcare_backend/internals/features/users/user/dto"

// LoginRequest.Username accepts either the username or the email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type LoginResponse struct {
	Access  string               `json:"access"`
	Refresh string               `json:"refresh"`
	User    userDTO.UserResponse `json:"user"`
}

type AccessResponse struct {
	Access string `json:"access"`
}
