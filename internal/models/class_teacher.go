package models

// ClassTeacher links a teacher to a class group.
type ClassTeacher struct {
	ID        int64 `db:"id" json:"id"`
	ClassID   int64 `db:"class_id" json:"class_id"`
	TeacherID int64 `db:"teacher_id" json:"teacher_id"`
}

func (c *ClassTeacher) Identity() int64      { return c.ID }
func (c *ClassTeacher) SetIdentity(id int64) { c.ID = id }

// ClassTeacherDetail carries the display names of both ends of the link.
type ClassTeacherDetail struct {
	ClassTeacher
	TeacherName *string `db:"teacher_name"`
	ClassCourse *string `db:"class_course"`
}
