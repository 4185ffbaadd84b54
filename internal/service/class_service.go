package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/validation"
)

type classRepository interface {
	FindAllComplete(ctx context.Context) ([]models.ClassGroupDetail, error)
	FindByID(ctx context.Context, id int64) (*models.ClassGroup, error)
	Create(ctx context.Context, class *models.ClassGroup) error
	Update(ctx context.Context, class *models.ClassGroup) error
	Delete(ctx context.Context, id int64) error
}

// ClassService handles class group use-cases.
type ClassService struct {
	repo      classRepository
	validator *validation.Validator
	cache     *CacheService
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(repo classRepository, validator *validation.Validator, cache *CacheService, logger *zap.Logger) *ClassService {
	if validator == nil {
		validator = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validator, cache: cache, logger: logger}
}

// List returns classes with roster counts.
func (s *ClassService) List(ctx context.Context) ([]models.ClassGroupDetail, error) {
	classes, err := s.repo.FindAllComplete(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list classes")
	}
	return classes, nil
}

// Get returns a class, or nil when absent.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.ClassGroup, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, internalError(err, "failed to load class")
	}
	return class, nil
}

// Create validates and stores a class.
func (s *ClassService) Create(ctx context.Context, req dto.ClassRequest) (*models.ClassGroup, error) {
	if err := validation.Check(s.validator, req, validation.ClassRules); err != nil {
		return nil, err
	}
	class := req.ToModel(0)
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, internalError(err, "failed to create class")
	}
	return class, nil
}

// Update validates and replaces a class.
func (s *ClassService) Update(ctx context.Context, id int64, req dto.ClassRequest) (*models.ClassGroup, error) {
	if err := validation.Check(s.validator, req, validation.ClassRules); err != nil {
		return nil, err
	}
	class := req.ToModel(id)
	if err := s.repo.Update(ctx, class); err != nil {
		return nil, internalError(err, "failed to update class")
	}
	return class, nil
}

// Delete removes a class. Enrollment links go with it, so cached students are dropped.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internalError(err, "failed to delete class")
	}
	_ = s.cache.Invalidate(ctx, studentCachePattern)
	return nil
}
