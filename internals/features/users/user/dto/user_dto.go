package dto

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"autismcare_backend/internals/features/users/user/model"
	helper "autismcare_backend/internals/helpers"
)

// MaxPasswordBytes is the bcrypt input limit.
const MaxPasswordBytes = 72

// UserRequest is the write payload for both create and full update.
type UserRequest struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
	UserType string `json:"user_type" validate:"omitempty,oneof=autistic parent guardian"`
	IsActive *bool  `json:"is_active"`
}

func (r *UserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.UserType = strings.ToLower(strings.TrimSpace(r.UserType))
	if r.UserType == "" {
		r.UserType = model.UserTypeAutistic
	}
}

// ToModel builds a new row with the password hashed.
func (r *UserRequest) ToModel() (*model.UserModel, error) {
	m := &model.UserModel{IsActive: true}
	if err := r.ApplyTo(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ApplyTo overwrites every writable column of m.
func (r *UserRequest) ApplyTo(m *model.UserModel) error {
	if len(r.Password) > MaxPasswordBytes {
		return helper.FieldError("password", "Ensure this field has no more than 72 bytes.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return helper.FieldError("password", "Ensure this field has no more than 72 bytes.")
	}
	if err != nil {
		return err
	}
	m.Username = r.Username
	m.Email = r.Email
	m.Password = string(hash)
	m.UserType = r.UserType
	m.IsActive = true
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return nil
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		UserType:  m.UserType,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserResponses(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToUserResponse(&rows[i]))
	}
	return out
}
