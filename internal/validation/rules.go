package validation

import (
	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
)

// StudentRules guard registration and amendment.
var StudentRules = []Rule[dto.StudentRequest]{
	{Field: "name", Tag: "required", Message: "name must not be empty", Value: func(r dto.StudentRequest) any { return r.Name }},
	{Field: "national_id", Tag: "required,len=11,numeric", Message: "national id must not be empty and must have 11 digits", Value: func(r dto.StudentRequest) any { return r.NationalID }},
}

// TeacherRules require a name and a valid email.
var TeacherRules = []Rule[dto.TeacherRequest]{
	{Field: "name", Tag: "required", Message: "name must not be empty", Value: func(r dto.TeacherRequest) any { return r.Name }},
	{Field: "email", Tag: "required,email", Message: "a valid email is required", Value: func(r dto.TeacherRequest) any { return r.Email }},
}

// LessonRules require a subject and positive references.
var LessonRules = []Rule[dto.LessonRequest]{
	{Field: "subject", Tag: "required", Message: "subject must be informed", Value: func(r dto.LessonRequest) any { return r.Subject }},
	{Field: "teacher_id", Tag: "gt=0", Message: "teacher id must be positive", Value: func(r dto.LessonRequest) any { return r.TeacherID }},
	{Field: "class_id", Tag: "gt=0", Message: "class id must be positive", Value: func(r dto.LessonRequest) any { return r.ClassID }},
}

// ClassRules require a course and an edition.
var ClassRules = []Rule[dto.ClassRequest]{
	{Field: "course", Tag: "required", Message: "course must not be empty", Value: func(r dto.ClassRequest) any { return r.Course }},
	{Field: "edition", Tag: "required", Message: "edition must not be empty", Value: func(r dto.ClassRequest) any { return r.Edition }},
}

// ClassStudentRules require both sides of an enrollment.
var ClassStudentRules = []Rule[dto.ClassStudentRequest]{
	{Field: "class_id", Tag: "gt=0", Message: "class id must be positive", Value: func(r dto.ClassStudentRequest) any { return r.ClassID }},
	{Field: "student_id", Tag: "gt=0", Message: "student id must be positive", Value: func(r dto.ClassStudentRequest) any { return r.StudentID }},
}

// ClassTeacherRules require both sides of a teaching link.
var ClassTeacherRules = []Rule[dto.ClassTeacherRequest]{
	{Field: "class_id", Tag: "gt=0", Message: "class id must be positive", Value: func(r dto.ClassTeacherRequest) any { return r.ClassID }},
	{Field: "teacher_id", Tag: "gt=0", Message: "teacher id must be positive", Value: func(r dto.ClassTeacherRequest) any { return r.TeacherID }},
}

// UserRules bound names, passwords and roles of new accounts.
var UserRules = []Rule[dto.UserRequest]{
	{Field: "name", Tag: "required", Message: "name must not be empty", Value: func(r dto.UserRequest) any { return r.Name }},
	{Field: "role", Tag: "required,oneof=marketing manager", Message: "role must be marketing or manager", Value: func(r dto.UserRequest) any { return r.Role }},
	{Field: "password", Tag: "required,min=5,max=10", Message: "password must have between 5 and 10 characters", Value: func(r dto.UserRequest) any { return r.Password }},
}

// LoginRules require both credentials.
var LoginRules = []Rule[models.LoginRequest]{
	{Field: "name", Tag: "required", Message: "name must not be empty", Value: func(r models.LoginRequest) any { return r.Name }},
	{Field: "password", Tag: "required", Message: "password must not be empty", Value: func(r models.LoginRequest) any { return r.Password }},
}
