package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/validation"
)

type classStudentRepository interface {
	FindAllComplete(ctx context.Context) ([]models.ClassStudentDetail, error)
	FindCompleteByID(ctx context.Context, id int64) (*models.ClassStudentDetail, error)
	Create(ctx context.Context, link *models.ClassStudent) error
	Update(ctx context.Context, link *models.ClassStudent) error
	Delete(ctx context.Context, id int64) error
}

// ClassStudentService manages enrollment links. Every change drops cached student lists.
type ClassStudentService struct {
	repo      classStudentRepository
	validator *validation.Validator
	cache     *CacheService
	logger    *zap.Logger
}

// NewClassStudentService constructs a ClassStudentService.
func NewClassStudentService(repo classStudentRepository, validator *validation.Validator, cache *CacheService, logger *zap.Logger) *ClassStudentService {
	if validator == nil {
		validator = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassStudentService{repo: repo, validator: validator, cache: cache, logger: logger}
}

// List returns enrollment links with student name and class course.
func (s *ClassStudentService) List(ctx context.Context) ([]models.ClassStudentDetail, error) {
	links, err := s.repo.FindAllComplete(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list class students")
	}
	return links, nil
}

// Get returns a resolved enrollment link, or nil when absent.
func (s *ClassStudentService) Get(ctx context.Context, id int64) (*models.ClassStudentDetail, error) {
	link, err := s.repo.FindCompleteByID(ctx, id)
	if err != nil {
		return nil, internalError(err, "failed to load class student")
	}
	return link, nil
}

// Create validates and stores an enrollment link.
func (s *ClassStudentService) Create(ctx context.Context, req dto.ClassStudentRequest) (*models.ClassStudent, error) {
	if err := validation.Check(s.validator, req, validation.ClassStudentRules); err != nil {
		return nil, err
	}
	link := req.ToModel(0)
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, internalError(err, "failed to create class student")
	}
	s.invalidate(ctx)
	return link, nil
}

// Update validates and replaces an enrollment link.
func (s *ClassStudentService) Update(ctx context.Context, id int64, req dto.ClassStudentRequest) (*models.ClassStudent, error) {
	if err := validation.Check(s.validator, req, validation.ClassStudentRules); err != nil {
		return nil, err
	}
	link := req.ToModel(id)
	if err := s.repo.Update(ctx, link); err != nil {
		return nil, internalError(err, "failed to update class student")
	}
	s.invalidate(ctx)
	return link, nil
}

// Delete removes an enrollment link.
func (s *ClassStudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internalError(err, "failed to delete class student")
	}
	s.invalidate(ctx)
	return nil
}

func (s *ClassStudentService) invalidate(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, studentCachePattern)
}
