package models

// Student represents a learner registered in the institution.
type Student struct {
	ID          int64          `db:"id" json:"id"`
	NationalID  string         `db:"national_id" json:"national_id"`
	Name        string         `db:"name" json:"name"`
	Active      bool           `db:"active" json:"active"`
	Enrollments []ClassStudent `db:"-" json:"enrollments"`
}

func (s *Student) Identity() int64      { return s.ID }
func (s *Student) SetIdentity(id int64) { s.ID = id }
