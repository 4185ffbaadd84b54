package dto

import "github.com/noah-isme/school-registry-api/internal/models"

// TeacherRequest is the payload for creating or replacing a teacher.
type TeacherRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
	Shift  string `json:"shift"`
}

// ToModel builds the teacher stored under id.
func (r TeacherRequest) ToModel(id int64) *models.Teacher {
	return &models.Teacher{ID: id, Name: r.Name, Email: r.Email, Active: r.Active, Shift: r.Shift}
}

// TeacherResponse is the wire representation of a teacher.
type TeacherResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
	Shift  string `json:"shift"`
}

// TeacherFromModel projects a teacher.
func TeacherFromModel(t models.Teacher) TeacherResponse {
	return TeacherResponse{ID: t.ID, Name: t.Name, Email: t.Email, Active: t.Active, Shift: t.Shift}
}

// TeachersFromModels projects every teacher.
func TeachersFromModels(teachers []models.Teacher) []TeacherResponse {
	return mapAll(teachers, TeacherFromModel)
}
