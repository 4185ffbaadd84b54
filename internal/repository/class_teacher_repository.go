package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-registry-api/internal/models"
)

var classTeacherTable = Table{Name: "class_teachers", Columns: []string{"class_id", "teacher_id"}}

const classTeacherDetailSelect = `SELECT ct.id, ct.class_id, ct.teacher_id, t.name AS teacher_name, c.course AS class_course
        FROM class_teachers ct
        LEFT JOIN teachers t ON t.id = ct.teacher_id
        LEFT JOIN classes c ON c.id = ct.class_id`

// ClassTeacherRepository manages the links between classes and teachers.
type ClassTeacherRepository struct {
	*Repository[models.ClassTeacher, *models.ClassTeacher]
}

// NewClassTeacherRepository constructs a ClassTeacherRepository.
func NewClassTeacherRepository(db *sqlx.DB) *ClassTeacherRepository {
	return &ClassTeacherRepository{Repository: NewRepository[models.ClassTeacher, *models.ClassTeacher](db, classTeacherTable)}
}

// FindAllComplete lists links with the teacher name and class course resolved.
func (r *ClassTeacherRepository) FindAllComplete(ctx context.Context) ([]models.ClassTeacherDetail, error) {
	defer r.Observe("find_all_complete", time.Now())

	links := make([]models.ClassTeacherDetail, 0)
	if err := r.DB().SelectContext(ctx, &links, classTeacherDetailSelect+" ORDER BY ct.id"); err != nil {
		return nil, fmt.Errorf("list class teachers: %w", err)
	}
	return links, nil
}

// FindCompleteByID returns a single resolved link, or nil when absent.
func (r *ClassTeacherRepository) FindCompleteByID(ctx context.Context, id int64) (*models.ClassTeacherDetail, error) {
	defer r.Observe("find_complete_by_id", time.Now())

	var link models.ClassTeacherDetail
	if err := r.DB().GetContext(ctx, &link, classTeacherDetailSelect+" WHERE ct.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find class teacher: %w", err)
	}
	return &link, nil
}
