package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/school-registry-api/internal/models"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

var studentTable = Table{Name: "students", Columns: []string{"national_id", "name", "active"}}

// Business rule refusals raised by StudentRepository.
var (
	ErrStudentAlreadyRegistered = appErrors.Rejection("STUDENT_ALREADY_REGISTERED", "student already registered")
	ErrStudentAttending         = appErrors.Rejection("STUDENT_ATTENDING", "student already attends a course")
)

// StudentRepository manages persistence for student records and their class enrollments.
//
// Register and Amend evaluate their rule with a plain read before writing. Two concurrent
// registrations of the same national id can both pass the read; the unique index on
// students.national_id is what finally rejects the second insert.
type StudentRepository struct {
	*Repository[models.Student, *models.Student]
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{Repository: NewRepository[models.Student, *models.Student](db, studentTable)}
}

// FindByID fetches a student with enrollments, or nil when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := r.Repository.FindByID(ctx, id)
	if err != nil || student == nil {
		return student, err
	}
	if err := r.attachEnrollments(ctx, []*models.Student{student}); err != nil {
		return nil, err
	}
	return student, nil
}

// Search lists students ordered by name with enrollments loaded. A non-empty pattern keeps
// only students whose name contains it, compared case-sensitively.
func (r *StudentRepository) Search(ctx context.Context, pattern string) ([]models.Student, error) {
	defer r.Observe("search", time.Now())

	query := fmt.Sprintf("SELECT %s FROM students ORDER BY name", studentTable.selectList())
	students := make([]models.Student, 0)
	if err := r.DB().SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}

	refs := make([]*models.Student, len(students))
	for i := range students {
		refs[i] = &students[i]
	}
	if err := r.attachEnrollments(ctx, refs); err != nil {
		return nil, err
	}

	if pattern == "" {
		return students, nil
	}
	matched := make([]models.Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(s.Name, pattern) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// FindByNationalID returns the first student by name order holding the national id, or nil.
func (r *StudentRepository) FindByNationalID(ctx context.Context, nationalID string) (*models.Student, error) {
	defer r.Observe("find_by_national_id", time.Now())

	query := fmt.Sprintf("SELECT %s FROM students WHERE national_id = $1 ORDER BY name LIMIT 1", studentTable.selectList())
	var student models.Student
	if err := r.DB().GetContext(ctx, &student, query, nationalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find student by national id: %w", err)
	}
	if err := r.attachEnrollments(ctx, []*models.Student{&student}); err != nil {
		return nil, err
	}
	return &student, nil
}

// Register inserts the student unless another student already holds its national id.
func (r *StudentRepository) Register(ctx context.Context, student *models.Student) error {
	taken, err := r.nationalIDTaken(ctx, student.NationalID)
	if err != nil {
		return err
	}
	if taken {
		return ErrStudentAlreadyRegistered
	}
	if err := r.Create(ctx, student); err != nil {
		if isUniqueViolation(err) {
			return ErrStudentAlreadyRegistered
		}
		return err
	}
	return nil
}

// Amend replaces the stored record unless the submitted student is active.
// Moving to a national id another student holds is refused like a duplicate registration.
func (r *StudentRepository) Amend(ctx context.Context, student *models.Student) error {
	if student.Active {
		return ErrStudentAttending
	}
	if err := r.Update(ctx, student); err != nil {
		if isUniqueViolation(err) {
			return ErrStudentAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *StudentRepository) nationalIDTaken(ctx context.Context, nationalID string) (bool, error) {
	defer r.Observe("national_id_taken", time.Now())

	var exists int
	if err := r.DB().GetContext(ctx, &exists, "SELECT 1 FROM students WHERE national_id = $1 LIMIT 1", nationalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check national id: %w", err)
	}
	return true, nil
}

func (r *StudentRepository) attachEnrollments(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}
	defer r.Observe("enrollments", time.Now())

	ids := make([]int64, len(students))
	byID := make(map[int64]*models.Student, len(students))
	for i, s := range students {
		ids[i] = s.ID
		byID[s.ID] = s
		s.Enrollments = make([]models.ClassStudent, 0)
	}

	var links []models.ClassStudent
	const query = `SELECT id, class_id, student_id FROM class_students WHERE student_id = ANY($1) ORDER BY id`
	if err := r.DB().SelectContext(ctx, &links, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("load student enrollments: %w", err)
	}
	for _, link := range links {
		if s, ok := byID[link.StudentID]; ok {
			s.Enrollments = append(s.Enrollments, link)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
