package models

// Teacher represents an instructor record.
type Teacher struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Email  string `db:"email" json:"email"`
	Active bool   `db:"active" json:"active"`
	Shift  string `db:"shift" json:"shift"`
}

func (t *Teacher) Identity() int64      { return t.ID }
func (t *Teacher) SetIdentity(id int64) { t.ID = id }
