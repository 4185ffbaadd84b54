package dto

import "github.com/noah-isme/school-registry-api/internal/models"

// ClassRequest is the payload for creating or replacing a class group.
type ClassRequest struct {
	Course  string `json:"course"`
	Edition string `json:"edition"`
}

// ToModel builds the class stored under id.
func (r ClassRequest) ToModel(id int64) *models.ClassGroup {
	return &models.ClassGroup{ID: id, Course: r.Course, Edition: r.Edition}
}

// ClassResponse is the wire representation of a class group.
type ClassResponse struct {
	ID           int64  `json:"id"`
	Course       string `json:"course"`
	Edition      string `json:"edition"`
	StudentCount *int   `json:"student_count,omitempty"`
	TeacherCount *int   `json:"teacher_count,omitempty"`
}

// ClassFromModel projects a class without roster counts.
func ClassFromModel(c models.ClassGroup) ClassResponse {
	return ClassResponse{ID: c.ID, Course: c.Course, Edition: c.Edition}
}

// ClassFromDetail projects a class with its roster counts.
func ClassFromDetail(d models.ClassGroupDetail) ClassResponse {
	resp := ClassFromModel(d.ClassGroup)
	students, teachers := d.StudentCount, d.TeacherCount
	resp.StudentCount = &students
	resp.TeacherCount = &teachers
	return resp
}

// ClassesFromDetails projects every class.
func ClassesFromDetails(classes []models.ClassGroupDetail) []ClassResponse {
	return mapAll(classes, ClassFromDetail)
}
