package models

// ClassStudent links a student to a class group.
type ClassStudent struct {
	ID        int64 `db:"id" json:"id"`
	ClassID   int64 `db:"class_id" json:"class_id"`
	StudentID int64 `db:"student_id" json:"student_id"`
}

func (c *ClassStudent) Identity() int64      { return c.ID }
func (c *ClassStudent) SetIdentity(id int64) { c.ID = id }

// ClassStudentDetail carries the display names of both ends of the link.
type ClassStudentDetail struct {
	ClassStudent
	StudentName *string `db:"student_name"`
	ClassCourse *string `db:"class_course"`
}
