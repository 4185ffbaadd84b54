package models

// UserRole is the authorization label carried in access tokens.
type UserRole string

const (
	RoleMarketing UserRole = "marketing"
	RoleManager   UserRole = "manager"
)

// User represents an application user stored in the users table.
type User struct {
	ID           int64    `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Role         UserRole `db:"role" json:"role"`
}

func (u *User) Identity() int64      { return u.ID }
func (u *User) SetIdentity(id int64) { u.ID = id }
