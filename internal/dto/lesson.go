package dto

import "github.com/noah-isme/school-registry-api/internal/models"

// LessonRequest is the payload for creating or replacing a lesson.
type LessonRequest struct {
	Subject   string `json:"subject"`
	TeacherID int64  `json:"teacher_id"`
	ClassID   int64  `json:"class_id"`
}

// ToModel builds the lesson stored under id.
func (r LessonRequest) ToModel(id int64) *models.Lesson {
	return &models.Lesson{ID: id, Subject: r.Subject, TeacherID: r.TeacherID, ClassID: r.ClassID}
}

// LessonResponse is the wire representation of a lesson with its teacher and class resolved.
type LessonResponse struct {
	ID        int64  `json:"id"`
	Subject   string `json:"subject"`
	TeacherID int64  `json:"teacher_id"`
	ClassID   int64  `json:"class_id"`
	Teacher   string `json:"teacher,omitempty"`
	Class     string `json:"class,omitempty"`
}

// LessonFromModel projects a lesson without its resolved names.
func LessonFromModel(l models.Lesson) LessonResponse {
	return LessonResponse{ID: l.ID, Subject: l.Subject, TeacherID: l.TeacherID, ClassID: l.ClassID}
}

// LessonFromDetail projects a lesson with teacher name and class course.
func LessonFromDetail(d models.LessonDetail) LessonResponse {
	resp := LessonFromModel(d.Lesson)
	resp.Teacher = deref(d.TeacherName)
	resp.Class = deref(d.ClassCourse)
	return resp
}

// LessonsFromDetails projects every lesson, never returning nil.
func LessonsFromDetails(lessons []models.LessonDetail) []LessonResponse {
	return mapAll(lessons, LessonFromDetail)
}
