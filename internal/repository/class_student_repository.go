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

var classStudentTable = Table{Name: "class_students", Columns: []string{"class_id", "student_id"}}

const classStudentDetailSelect = `SELECT cs.id, cs.class_id, cs.student_id, s.name AS student_name, c.course AS class_course
        FROM class_students cs
        LEFT JOIN students s ON s.id = cs.student_id
        LEFT JOIN classes c ON c.id = cs.class_id`

// ClassStudentRepository manages the links between classes and students.
type ClassStudentRepository struct {
	*Repository[models.ClassStudent, *models.ClassStudent]
}

// NewClassStudentRepository constructs a ClassStudentRepository.
func NewClassStudentRepository(db *sqlx.DB) *ClassStudentRepository {
	return &ClassStudentRepository{Repository: NewRepository[models.ClassStudent, *models.ClassStudent](db, classStudentTable)}
}

// FindAllComplete lists links with the student name and class course resolved.
func (r *ClassStudentRepository) FindAllComplete(ctx context.Context) ([]models.ClassStudentDetail, error) {
	defer r.Observe("find_all_complete", time.Now())

	links := make([]models.ClassStudentDetail, 0)
	if err := r.DB().SelectContext(ctx, &links, classStudentDetailSelect+" ORDER BY cs.id"); err != nil {
		return nil, fmt.Errorf("list class students: %w", err)
	}
	return links, nil
}

// FindCompleteByID returns a single resolved link, or nil when absent.
func (r *ClassStudentRepository) FindCompleteByID(ctx context.Context, id int64) (*models.ClassStudentDetail, error) {
	defer r.Observe("find_complete_by_id", time.Now())

	var link models.ClassStudentDetail
	if err := r.DB().GetContext(ctx, &link, classStudentDetailSelect+" WHERE cs.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find class student: %w", err)
	}
	return &link, nil
}
