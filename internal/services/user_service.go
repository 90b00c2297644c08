package services

import (
	"errors"
	"fmt"
	"log/slog"

	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type userService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &userService{
		userRepo:        userRepo,
		passwordService: passwordService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create registers a new user after checking email and username uniqueness
func (s *userService) Create(username, email, password, aboutMe string) (*models.User, error) {
	if err := s.ensureEmailFree(email); err != nil {
		s.recordOperation("create", "conflict")
		return nil, err
	}
	if err := s.ensureUsernameFree(username); err != nil {
		s.recordOperation("create", "conflict")
		return nil, err
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		s.recordOperation("create", "invalid")
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		AboutMe:      aboutMe,
	}

	if err := s.userRepo.Create(user); err != nil {
		s.recordOperation("create", "error")
		return nil, err
	}

	s.recordOperation("create", "success")
	s.logger.Info("user created", "user_id", user.ID, "username", user.Username)

	return user, nil
}

// Get retrieves a user by id
func (s *userService) Get(id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// List retrieves all users
func (s *userService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// Update applies only the fields present in the patch. Email and username
// changes are re-checked for uniqueness; a password change is re-hashed.
func (s *userService) Update(id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if err := s.ensureEmailFree(*patch.Email); err != nil {
			s.recordOperation("update", "conflict")
			return nil, err
		}
		user.Email = *patch.Email
	}

	if patch.Username != nil && *patch.Username != user.Username {
		if err := s.ensureUsernameFree(*patch.Username); err != nil {
			s.recordOperation("update", "conflict")
			return nil, err
		}
		user.Username = *patch.Username
	}

	if patch.AboutMe != nil {
		user.AboutMe = *patch.AboutMe
	}

	if patch.Password != nil {
		hash, err := s.passwordService.HashPassword(*patch.Password)
		if err != nil {
			s.recordOperation("update", "invalid")
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		s.recordOperation("update", "error")
		return nil, err
	}

	s.recordOperation("update", "success")
	s.logger.Info("user updated", "user_id", user.ID)

	return user, nil
}

// Delete removes a user and cascades its transaction associations; the shared
// transactions themselves survive for their remaining users.
func (s *userService) Delete(id uuid.UUID) error {
	if err := s.userRepo.Delete(id); err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			s.recordOperation("delete", "error")
		}
		return err
	}

	s.recordOperation("delete", "success")
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// Authenticate verifies a credential pair and returns the matching user
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordService.ComparePassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) ensureEmailFree(email string) error {
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return nil
}

func (s *userService) ensureUsernameFree(username string) error {
	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	return nil
}

func (s *userService) recordOperation(operation, status string) {
	if s.metrics != nil {
		s.metrics.RecordEntityOperation("user", operation, status)
	}
}
