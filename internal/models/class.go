package models

// ClassGroup represents a course edition that students attend and teachers teach.
type ClassGroup struct {
	ID      int64  `db:"id" json:"id"`
	Course  string `db:"course" json:"course"`
	Edition string `db:"edition" json:"edition"`
}

func (c *ClassGroup) Identity() int64      { return c.ID }
func (c *ClassGroup) SetIdentity(id int64) { c.ID = id }

// ClassGroupDetail extends ClassGroup with roster counts.
type ClassGroupDetail struct {
	ClassGroup
	StudentCount int `db:"student_count" json:"student_count"`
	TeacherCount int `db:"teacher_count" json:"teacher_count"`
}
