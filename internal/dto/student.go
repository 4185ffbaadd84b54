package dto

import "github.com/noah-isme/school-registry-api/internal/models"

// StudentRequest is the payload accepted when registering or amending a student.
type StudentRequest struct {
	NationalID string `json:"national_id" example:"12345678901"`
	Name       string `json:"name" example:"Ana"`
	Active     bool   `json:"active"`
}

// ToModel builds the student entity carrying the given identity.
func (r StudentRequest) ToModel(id int64) *models.Student {
	return &models.Student{ID: id, NationalID: r.NationalID, Name: r.Name, Active: r.Active}
}

// EnrollmentResponse is a class link listed under a student.
type EnrollmentResponse struct {
	ID      int64 `json:"id"`
	ClassID int64 `json:"class_id"`
}

// StudentResponse is the wire representation of a student.
type StudentResponse struct {
	ID          int64                `json:"id"`
	NationalID  string               `json:"national_id"`
	Name        string               `json:"name"`
	Active      bool                 `json:"active"`
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

// StudentFromModel projects a student entity.
func StudentFromModel(s models.Student) StudentResponse {
	enrollments := make([]EnrollmentResponse, len(s.Enrollments))
	for i, link := range s.Enrollments {
		enrollments[i] = EnrollmentResponse{ID: link.ID, ClassID: link.ClassID}
	}
	return StudentResponse{
		ID:          s.ID,
		NationalID:  s.NationalID,
		Name:        s.Name,
		Active:      s.Active,
		Enrollments: enrollments,
	}
}

// StudentsFromModels projects a list of students.
func StudentsFromModels(students []models.Student) []StudentResponse {
	return mapAll(students, StudentFromModel)
}
