package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/validation"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

const studentCachePattern = "students:*"

type studentRepository interface {
	Search(ctx context.Context, pattern string) ([]models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	FindByNationalID(ctx context.Context, nationalID string) (*models.Student, error)
	Register(ctx context.Context, student *models.Student) error
	Amend(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type rejectionRecorder interface {
	RecordRejection(code string)
}

// StudentService handles student use-cases.
type StudentService struct {
	repo       studentRepository
	validator  *validation.Validator
	cache      *CacheService
	logger     *zap.Logger
	rejections rejectionRecorder
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validator *validation.Validator, cache *CacheService, logger *zap.Logger) *StudentService {
	if validator == nil {
		validator = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validator, cache: cache, logger: logger}
}

// WithRejectionRecorder reports refused registrations and amendments to r.
func (s *StudentService) WithRejectionRecorder(r rejectionRecorder) *StudentService {
	s.rejections = r
	return s
}

// List returns students ordered by name whose name contains pattern.
func (s *StudentService) List(ctx context.Context, pattern string) ([]models.Student, error) {
	return remember(ctx, s.cache, fmt.Sprintf("students:list:%s", pattern), func() ([]models.Student, error) {
		students, err := s.repo.Search(ctx, pattern)
		if err != nil {
			return nil, internalError(err, "failed to list students")
		}
		return students, nil
	})
}

// Get returns a student, or nil when none has the id.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, internalError(err, "failed to load student")
	}
	return student, nil
}

// GetByNationalID returns the student holding the national id, or nil.
func (s *StudentService) GetByNationalID(ctx context.Context, nationalID string) (*models.Student, error) {
	student, err := s.repo.FindByNationalID(ctx, nationalID)
	if err != nil {
		return nil, internalError(err, "failed to load student")
	}
	return student, nil
}

// Register validates and registers a new student. A duplicate national id is a rejection.
func (s *StudentService) Register(ctx context.Context, req dto.StudentRequest) (*models.Student, error) {
	if err := validation.Check(s.validator, req, validation.StudentRules); err != nil {
		return nil, err
	}
	student := req.ToModel(0)
	if err := s.repo.Register(ctx, student); err != nil {
		s.noteRejection(err, req.NationalID)
		return nil, internalError(err, "failed to register student")
	}
	s.invalidate(ctx)
	return student, nil
}

// Amend validates and replaces a student record. An active student is a rejection.
func (s *StudentService) Amend(ctx context.Context, id int64, req dto.StudentRequest) (*models.Student, error) {
	if err := validation.Check(s.validator, req, validation.StudentRules); err != nil {
		return nil, err
	}
	student := req.ToModel(id)
	if err := s.repo.Amend(ctx, student); err != nil {
		s.noteRejection(err, req.NationalID)
		return nil, internalError(err, "failed to amend student")
	}
	s.invalidate(ctx)
	return student, nil
}

// Delete removes a student. Unknown ids are ignored.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internalError(err, "failed to delete student")
	}
	s.invalidate(ctx)
	return nil
}

func (s *StudentService) invalidate(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, studentCachePattern)
}

func (s *StudentService) noteRejection(err error, nationalID string) {
	if !appErrors.IsRejection(err) {
		return
	}
	code := appErrors.FromError(err).Code
	s.logger.Info("student change rejected", zap.String("code", code), zap.String("national_id", nationalID))
	if s.rejections != nil {
		s.rejections.RecordRejection(code)
	}
}
