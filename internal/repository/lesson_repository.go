package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-registry-api/internal/models"
)

var lessonTable = Table{Name: "lessons", Columns: []string{"subject", "teacher_id", "class_id"}}

// LessonRepository manages persistence for lessons.
type LessonRepository struct {
	*Repository[models.Lesson, *models.Lesson]
}

// NewLessonRepository constructs a LessonRepository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{Repository: NewRepository[models.Lesson, *models.Lesson](db, lessonTable)}
}

// FindAllComplete lists lessons joined with their teacher and class.
func (r *LessonRepository) FindAllComplete(ctx context.Context) ([]models.LessonDetail, error) {
	defer r.Observe("find_all_complete", time.Now())

	const query = `SELECT l.id, l.subject, l.teacher_id, l.class_id,
        t.name AS teacher_name, c.course AS class_course, c.edition AS class_edition
        FROM lessons l
        LEFT JOIN teachers t ON t.id = l.teacher_id
        LEFT JOIN classes c ON c.id = l.class_id
        ORDER BY l.id`
	lessons := make([]models.LessonDetail, 0)
	if err := r.DB().SelectContext(ctx, &lessons, query); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}
