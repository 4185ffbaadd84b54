package models

// Lesson is a subject taught by a teacher to a class.
type Lesson struct {
	ID        int64  `db:"id" json:"id"`
	Subject   string `db:"subject" json:"subject"`
	TeacherID int64  `db:"teacher_id" json:"teacher_id"`
	ClassID   int64  `db:"class_id" json:"class_id"`
}

func (l *Lesson) Identity() int64      { return l.ID }
func (l *Lesson) SetIdentity(id int64) { l.ID = id }

// LessonDetail extends Lesson with the related teacher and class.
type LessonDetail struct {
	Lesson
	TeacherName  *string `db:"teacher_name" json:"teacher_name,omitempty"`
	ClassCourse  *string `db:"class_course" json:"class_course,omitempty"`
	ClassEdition *string `db:"class_edition" json:"class_edition,omitempty"`
}
