package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-registry-api/internal/models"
)

var classTable = Table{Name: "classes", Columns: []string{"course", "edition"}}

// ClassRepository manages persistence for class groups.
type ClassRepository struct {
	*Repository[models.ClassGroup, *models.ClassGroup]
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{Repository: NewRepository[models.ClassGroup, *models.ClassGroup](db, classTable)}
}

// FindAllComplete lists classes with the size of their student and teacher rosters.
func (r *ClassRepository) FindAllComplete(ctx context.Context) ([]models.ClassGroupDetail, error) {
	defer r.Observe("find_all_complete", time.Now())

	const query = `SELECT c.id, c.course, c.edition,
        (SELECT COUNT(*) FROM class_students cs WHERE cs.class_id = c.id) AS student_count,
        (SELECT COUNT(*) FROM class_teachers ct WHERE ct.class_id = c.id) AS teacher_count
        FROM classes c
        ORDER BY c.course, c.edition`
	classes := make([]models.ClassGroupDetail, 0)
	if err := r.DB().SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}
