package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassStudentRepositoryFindAllComplete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM class_students cs")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_id", "student_id", "student_name", "class_course"}).
			AddRow(1, 3, 7, "Ana", "Go Backend"))

	links, err := repo.FindAllComplete(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, int64(7), links[0].StudentID)
	assert.Equal(t, "Ana", *links[0].StudentName)
	assert.Equal(t, "Go Backend", *links[0].ClassCourse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassStudentRepositoryFindCompleteByIDAbsent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE cs.id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_id", "student_id", "student_name", "class_course"}))

	link, err := repo.FindCompleteByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, link)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassTeacherRepositoryFindCompleteByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ct.id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_id", "teacher_id", "teacher_name", "class_course"}).
			AddRow(2, 3, 4, "Carla", "Go Backend"))

	link, err := repo.FindCompleteByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "Carla", *link.TeacherName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
