package services

import (
	"errors"
	"fmt"
	"log/slog"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
)

var ErrCategoryExists = errors.New("category already exists")

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// Create adds a new category with a globally unique name
func (s *categoryService) Create(name string) (*models.Category, error) {
	if name == "" {
		s.recordOperation("create", "invalid")
		return nil, models.ErrCategoryNameRequired
	}

	if err := s.ensureNameFree(name); err != nil {
		s.recordOperation("create", "conflict")
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		s.recordOperation("create", "error")
		return nil, err
	}

	s.recordOperation("create", "success")
	s.logger.Info("category created", "category_id", category.ID, "name", category.Name)

	return category, nil
}

// Get retrieves a category by id
func (s *categoryService) Get(id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// List retrieves all categories
func (s *categoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Update renames a category, keeping the name globally unique
func (s *categoryService) Update(id uuid.UUID, name string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name == "" || name == category.Name {
		return category, nil
	}

	if err := s.ensureNameFree(name); err != nil {
		s.recordOperation("update", "conflict")
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(category); err != nil {
		s.recordOperation("update", "error")
		return nil, err
	}

	s.recordOperation("update", "success")
	s.logger.Info("category updated", "category_id", category.ID, "name", category.Name)

	return category, nil
}

// Delete removes a category and cascades its transaction associations
func (s *categoryService) Delete(id uuid.UUID) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		if !errors.Is(err, repositories.ErrCategoryNotFound) {
			s.recordOperation("delete", "error")
		}
		return err
	}

	s.recordOperation("delete", "success")
	s.logger.Info("category deleted", "category_id", id)
	return nil
}

func (s *categoryService) ensureNameFree(name string) error {
	_, err := s.categoryRepo.GetByName(name)
	if err == nil {
		return ErrCategoryExists
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	return nil
}

func (s *categoryService) recordOperation(operation, status string) {
	if s.metrics != nil {
		s.metrics.RecordEntityOperation("category", operation, status)
	}
}
