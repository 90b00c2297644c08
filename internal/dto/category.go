package dto

import (
	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateCategoryRequest renames a category
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryResponse is the public representation of a category
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewCategoryResponse maps a category model to its response form
func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// NewCategoryListResponse maps a slice of category models
func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = NewCategoryResponse(&categories[i])
	}
	return responses
}
