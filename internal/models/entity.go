package models

// Entity is implemented by every persisted record keyed by an auto-assigned integer identity.
type Entity interface {
	Identity() int64
	SetIdentity(id int64)
}
