package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-registry-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestClassStudentFromDetailFlattensNames(t *testing.T) {
	detail := models.ClassStudentDetail{
		ClassStudent: models.ClassStudent{ID: 1, ClassID: 3, StudentID: 7},
		StudentName:  strPtr("Ana"),
		ClassCourse:  strPtr("Go Backend"),
	}

	resp := ClassStudentFromDetail(detail)

	assert.Equal(t, ClassStudentResponse{ID: 1, ClassID: 3, StudentID: 7, Student: "Ana", Class: "Go Backend"}, resp)
}

func TestClassTeacherFromDetailToleratesDanglingLink(t *testing.T) {
	resp := ClassTeacherFromDetail(models.ClassTeacherDetail{ClassTeacher: models.ClassTeacher{ID: 2, ClassID: 3, TeacherID: 9}})

	assert.Equal(t, "", resp.Teacher)
	assert.Equal(t, "", resp.Class)
	assert.Equal(t, int64(9), resp.TeacherID)
}

func TestStudentRoundTripKeepsFields(t *testing.T) {
	req := StudentRequest{NationalID: "12345678901", Name: "Ana", Active: false}

	model := req.ToModel(5)
	model.Enrollments = []models.ClassStudent{{ID: 10, ClassID: 3, StudentID: 5}}
	resp := StudentFromModel(*model)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, req.NationalID, resp.NationalID)
	assert.Equal(t, req.Name, resp.Name)
	assert.Equal(t, []EnrollmentResponse{{ID: 10, ClassID: 3}}, resp.Enrollments)
}

func TestUserResponseHasNoPassword(t *testing.T) {
	raw, err := json.Marshal(UserFromModel(models.User{ID: 1, Name: "maria", PasswordHash: "secret-hash", Role: models.RoleManager}))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret-hash")
	assert.NotContains(t, string(raw), "password")
}

func TestStudentsFromModelsEmptyIsNotNil(t *testing.T) {
	raw, err := json.Marshal(StudentsFromModels(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
