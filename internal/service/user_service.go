package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/validation"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

type userRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// UserService manages application users.
type UserService struct {
	repo      userRepository
	validator *validation.Validator
	logger    *zap.Logger
	hashCost  int
}

// NewUserService constructs a UserService.
func NewUserService(repo userRepository, validator *validation.Validator, logger *zap.Logger) *UserService {
	if validator == nil {
		validator = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validator, logger: logger, hashCost: bcrypt.DefaultCost}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list users")
	}
	return users, nil
}

// Create validates the payload, hashes the password, and stores the user.
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*models.User, error) {
	if err := validation.Check(s.validator, req, validation.UserRules); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, internalError(err, "failed to check user name")
	}
	if existing != nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user name already taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, internalError(err, "failed to hash password")
	}
	user := &models.User{Name: req.Name, PasswordHash: string(hash), Role: models.UserRole(req.Role)}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, internalError(err, "failed to create user")
	}
	s.logger.Info("user created", zap.Int64("user_id", user.ID), zap.String("role", req.Role))
	return user, nil
}
