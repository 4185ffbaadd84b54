package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-registry-api/internal/models"
)

var teacherTable = Table{Name: "teachers", Columns: []string{"name", "email", "active", "shift"}}

// TeacherRepository manages persistence for teacher records.
type TeacherRepository struct {
	*Repository[models.Teacher, *models.Teacher]
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{Repository: NewRepository[models.Teacher, *models.Teacher](db, teacherTable)}
}

// FindAllComplete lists teachers ordered by name.
func (r *TeacherRepository) FindAllComplete(ctx context.Context) ([]models.Teacher, error) {
	defer r.Observe("find_all_complete", time.Now())

	query := fmt.Sprintf("SELECT %s FROM teachers ORDER BY name, id", teacherTable.selectList())
	teachers := make([]models.Teacher, 0)
	if err := r.DB().SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}
