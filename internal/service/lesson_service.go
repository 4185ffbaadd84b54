package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/validation"
)

type lessonRepository interface {
	FindAllComplete(ctx context.Context) ([]models.LessonDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	Update(ctx context.Context, lesson *models.Lesson) error
	Delete(ctx context.Context, id int64) error
}

// LessonService handles lesson use-cases.
type LessonService struct {
	repo      lessonRepository
	validator *validation.Validator
	logger    *zap.Logger
}

// NewLessonService constructs a LessonService.
func NewLessonService(repo lessonRepository, validator *validation.Validator, logger *zap.Logger) *LessonService {
	if validator == nil {
		validator = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonService{repo: repo, validator: validator, logger: logger}
}

// List returns lessons with their teacher and class resolved.
func (s *LessonService) List(ctx context.Context) ([]models.LessonDetail, error) {
	lessons, err := s.repo.FindAllComplete(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list lessons")
	}
	return lessons, nil
}

// Get returns a lesson, or nil when absent.
func (s *LessonService) Get(ctx context.Context, id int64) (*models.Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, internalError(err, "failed to load lesson")
	}
	return lesson, nil
}

// Create validates and stores a lesson.
func (s *LessonService) Create(ctx context.Context, req dto.LessonRequest) (*models.Lesson, error) {
	if err := validation.Check(s.validator, req, validation.LessonRules); err != nil {
		return nil, err
	}
	lesson := req.ToModel(0)
	if err := s.repo.Create(ctx, lesson); err != nil {
		return nil, internalError(err, "failed to create lesson")
	}
	return lesson, nil
}

// Update validates and replaces a lesson.
func (s *LessonService) Update(ctx context.Context, id int64, req dto.LessonRequest) (*models.Lesson, error) {
	if err := validation.Check(s.validator, req, validation.LessonRules); err != nil {
		return nil, err
	}
	lesson := req.ToModel(id)
	if err := s.repo.Update(ctx, lesson); err != nil {
		return nil, internalError(err, "failed to update lesson")
	}
	return lesson, nil
}

// Delete removes a lesson.
func (s *LessonService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internalError(err, "failed to delete lesson")
	}
	return nil
}
