package services

import (
	"io"
	"log/slog"
	"testing"

	"spendtrack/internal/database"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

type UserServiceSuite struct {
	suite.Suite
	db      *database.DB
	service UserServiceInterface
}

func (s *UserServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewUserService(
		repositories.NewUserRepository(s.db.DB),
		NewPasswordService(4),
		nil,
		logger,
	)
}

func (s *UserServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserServiceSuite) TestUserService_Create() {
	user, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "keeps the books")
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotEqual("s3cret-pass", user.PasswordHash)
	s.Equal("keeps the books", user.AboutMe)
}

func (s *UserServiceSuite) TestUserService_Create_DuplicateEmail() {
	_, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "")
	s.NoError(err)

	_, err = s.service.Create("other", "alice@example.com", "s3cret-pass", "")
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *UserServiceSuite) TestUserService_Create_DuplicateUsername() {
	_, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "")
	s.NoError(err)

	_, err = s.service.Create("alice", "other@example.com", "s3cret-pass", "")
	s.ErrorIs(err, ErrUsernameTaken)
}

func (s *UserServiceSuite) TestUserService_Create_WeakPassword() {
	_, err := s.service.Create("alice", "alice@example.com", "short", "")
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *UserServiceSuite) TestUserService_Update_PartialFields() {
	user, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "old bio")
	s.NoError(err)

	newBio := "new bio"
	updated, err := s.service.Update(user.ID, models.UserPatch{AboutMe: &newBio})
	s.NoError(err)
	s.Equal("new bio", updated.AboutMe)
	s.Equal("alice", updated.Username)
}

func (s *UserServiceSuite) TestUserService_Update_DuplicateEmailRejected() {
	_, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "")
	s.NoError(err)
	bob, err := s.service.Create("bob", "bob@example.com", "s3cret-pass", "")
	s.NoError(err)

	taken := "alice@example.com"
	_, err = s.service.Update(bob.ID, models.UserPatch{Email: &taken})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *UserServiceSuite) TestUserService_Update_SameEmailAccepted() {
	user, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "")
	s.NoError(err)

	same := "alice@example.com"
	updated, err := s.service.Update(user.ID, models.UserPatch{Email: &same})
	s.NoError(err)
	s.Equal(same, updated.Email)
}

func (s *UserServiceSuite) TestUserService_Update_PasswordRehashed() {
	user, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "")
	s.NoError(err)
	oldHash := user.PasswordHash

	newPassword := "another-pass"
	updated, err := s.service.Update(user.ID, models.UserPatch{Password: &newPassword})
	s.NoError(err)
	s.NotEqual(oldHash, updated.PasswordHash)

	_, err = s.service.Authenticate("alice@example.com", "another-pass")
	s.NoError(err)
}

func (s *UserServiceSuite) TestUserService_Delete() {
	user, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "")
	s.NoError(err)

	err = s.service.Delete(user.ID)
	s.NoError(err)

	_, err = s.service.Get(user.ID)
	s.ErrorIs(err, repositories.ErrUserNotFound)

	err = s.service.Delete(user.ID)
	s.ErrorIs(err, repositories.ErrUserNotFound)
}

func (s *UserServiceSuite) TestUserService_Authenticate() {
	_, err := s.service.Create("alice", "alice@example.com", "s3cret-pass", "")
	s.NoError(err)

	user, err := s.service.Authenticate("alice@example.com", "s3cret-pass")
	s.NoError(err)
	s.Equal("alice", user.Username)

	_, err = s.service.Authenticate("alice@example.com", "wrong-pass")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.service.Authenticate("nobody@example.com", "s3cret-pass")
	s.ErrorIs(err, ErrInvalidCredentials)
}
