package dto

import "github.com/noah-isme/school-registry-api/internal/models"

// ClassStudentRequest links a student to a class.
type ClassStudentRequest struct {
	ClassID   int64 `json:"class_id"`
	StudentID int64 `json:"student_id"`
}

// ToModel builds the enrollment link stored under id.
func (r ClassStudentRequest) ToModel(id int64) *models.ClassStudent {
	return &models.ClassStudent{ID: id, ClassID: r.ClassID, StudentID: r.StudentID}
}

// ClassStudentResponse flattens the linked student name and class course for display.
type ClassStudentResponse struct {
	ID        int64  `json:"id"`
	ClassID   int64  `json:"class_id"`
	StudentID int64  `json:"student_id"`
	Student   string `json:"student"`
	Class     string `json:"class"`
}

// ClassStudentFromDetail projects a resolved link into its flat display form.
func ClassStudentFromDetail(d models.ClassStudentDetail) ClassStudentResponse {
	return ClassStudentResponse{
		ID:        d.ID,
		ClassID:   d.ClassID,
		StudentID: d.StudentID,
		Student:   deref(d.StudentName),
		Class:     deref(d.ClassCourse),
	}
}

// ClassStudentsFromDetails projects every enrollment link.
func ClassStudentsFromDetails(links []models.ClassStudentDetail) []ClassStudentResponse {
	return mapAll(links, ClassStudentFromDetail)
}

// ClassTeacherRequest links a teacher to a class.
type ClassTeacherRequest struct {
	ClassID   int64 `json:"class_id"`
	TeacherID int64 `json:"teacher_id"`
}

// ToModel builds the teaching link stored under id.
func (r ClassTeacherRequest) ToModel(id int64) *models.ClassTeacher {
	return &models.ClassTeacher{ID: id, ClassID: r.ClassID, TeacherID: r.TeacherID}
}

// ClassTeacherResponse flattens the linked teacher name and class course for display.
type ClassTeacherResponse struct {
	ID        int64  `json:"id"`
	ClassID   int64  `json:"class_id"`
	TeacherID int64  `json:"teacher_id"`
	Teacher   string `json:"teacher"`
	Class     string `json:"class"`
}

// ClassTeacherFromDetail projects a resolved link into its flat display form.
func ClassTeacherFromDetail(d models.ClassTeacherDetail) ClassTeacherResponse {
	return ClassTeacherResponse{
		ID:        d.ID,
		ClassID:   d.ClassID,
		TeacherID: d.TeacherID,
		Teacher:   deref(d.TeacherName),
		Class:     deref(d.ClassCourse),
	}
}

// ClassTeachersFromDetails projects every teaching link.
func ClassTeachersFromDetails(links []models.ClassTeacherDetail) []ClassTeacherResponse {
	return mapAll(links, ClassTeacherFromDetail)
}
