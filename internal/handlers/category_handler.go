package handlers

import (
	stderrors "errors"
	"net/http"

	"spendtrack/internal/dto"
	"spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(req.Name)
	if err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// GetCategory retrieves a category by id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	category, err := h.categoryService.Get(id)
	if err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// ListCategories retrieves all categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// UpdateCategory renames a category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(id, req.Name)
	if err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// DeleteCategory removes a category and its transaction associations
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.Delete(id); err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) mapCategoryError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrCategoryExists):
		return SendError(c, errors.CategoryAlreadyExists)
	case stderrors.Is(err, models.ErrCategoryNameRequired):
		return SendError(c, errors.CategoryNameRequired)
	default:
		return SendSystemError(c, err)
	}
}
