package dto

import (
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// CreateUserRequest is the payload for registering a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	AboutMe  string `json:"about_me" validate:"max=500"`
}

// UpdateUserRequest carries partial user updates; absent fields stay unchanged
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=20"`
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	AboutMe  *string `json:"about_me" validate:"omitempty,max=500"`
}

// ToPatch converts the request into a service-level patch
func (r UpdateUserRequest) ToPatch() models.UserPatch {
	return models.UserPatch{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		AboutMe:  r.AboutMe,
	}
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AboutMe   string    `json:"about_me"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user model to its response form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		AboutMe:   user.AboutMe,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserListResponse maps a slice of user models
func NewUserListResponse(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = NewUserResponse(&users[i])
	}
	return responses
}
