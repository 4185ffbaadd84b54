package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-registry-api/internal/models"
)

func TestTeacherRepositoryFindAllComplete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, active, shift FROM teachers ORDER BY name, id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "active", "shift"}).
			AddRow(2, "Carla", "carla@school.test", true, "morning").
			AddRow(1, "Diego", "diego@school.test", false, "night"))

	teachers, err := repo.FindAllComplete(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Carla", teachers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teachers (name, email, active, shift) VALUES")).
		WithArgs("Carla", "carla@school.test", true, "morning").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	teacher := &models.Teacher{Name: "Carla", Email: "carla@school.test", Active: true, Shift: "morning"}
	require.NoError(t, repo.Create(context.Background(), teacher))
	assert.Equal(t, int64(4), teacher.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepositoryFindAllComplete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLessonRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM lessons l")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subject", "teacher_id", "class_id", "teacher_name", "class_course", "class_edition"}).
			AddRow(1, "Generics", 2, 3, "Carla", "Go Backend", "2024.1").
			AddRow(2, "Channels", 9, 3, nil, "Go Backend", "2024.1"))

	lessons, err := repo.FindAllComplete(context.Background())
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	require.NotNil(t, lessons[0].TeacherName)
	assert.Equal(t, "Carla", *lessons[0].TeacherName)
	assert.Nil(t, lessons[1].TeacherName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryFindAllComplete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes c")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "course", "edition", "student_count", "teacher_count"}).
			AddRow(3, "Go Backend", "2024.1", 12, 2))

	classes, err := repo.FindAllComplete(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, 12, classes[0].StudentCount)
	assert.Equal(t, 2, classes[0].TeacherCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
