package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/validation"
)

type classTeacherRepository interface {
	FindAllComplete(ctx context.Context) ([]models.ClassTeacherDetail, error)
	FindCompleteByID(ctx context.Context, id int64) (*models.ClassTeacherDetail, error)
	Create(ctx context.Context, link *models.ClassTeacher) error
	Update(ctx context.Context, link *models.ClassTeacher) error
	Delete(ctx context.Context, id int64) error
}

// ClassTeacherService manages the teachers assigned to each class.
type ClassTeacherService struct {
	repo      classTeacherRepository
	validator *validation.Validator
	logger    *zap.Logger
}

// NewClassTeacherService constructs a ClassTeacherService.
func NewClassTeacherService(repo classTeacherRepository, validator *validation.Validator, logger *zap.Logger) *ClassTeacherService {
	if validator == nil {
		validator = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassTeacherService{repo: repo, validator: validator, logger: logger}
}

// List returns teaching links with teacher name and class course.
func (s *ClassTeacherService) List(ctx context.Context) ([]models.ClassTeacherDetail, error) {
	links, err := s.repo.FindAllComplete(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list class teachers")
	}
	return links, nil
}

// Get returns a resolved teaching link, or nil when absent.
func (s *ClassTeacherService) Get(ctx context.Context, id int64) (*models.ClassTeacherDetail, error) {
	link, err := s.repo.FindCompleteByID(ctx, id)
	if err != nil {
		return nil, internalError(err, "failed to load class teacher")
	}
	return link, nil
}

// Create validates and stores a teaching link.
func (s *ClassTeacherService) Create(ctx context.Context, req dto.ClassTeacherRequest) (*models.ClassTeacher, error) {
	if err := validation.Check(s.validator, req, validation.ClassTeacherRules); err != nil {
		return nil, err
	}
	link := req.ToModel(0)
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, internalError(err, "failed to create class teacher")
	}
	return link, nil
}

// Update validates and replaces a teaching link.
func (s *ClassTeacherService) Update(ctx context.Context, id int64, req dto.ClassTeacherRequest) (*models.ClassTeacher, error) {
	if err := validation.Check(s.validator, req, validation.ClassTeacherRules); err != nil {
		return nil, err
	}
	link := req.ToModel(id)
	if err := s.repo.Update(ctx, link); err != nil {
		return nil, internalError(err, "failed to update class teacher")
	}
	return link, nil
}

// Delete removes a teaching link.
func (s *ClassTeacherService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internalError(err, "failed to delete class teacher")
	}
	return nil
}
