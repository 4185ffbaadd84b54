package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-registry-api/internal/models"
)

var userTable = Table{Name: "users", Columns: []string{"name", "password_hash", "role"}}

// UserRepository handles persistence of user entities.
type UserRepository struct {
	*Repository[models.User, *models.User]
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[models.User, *models.User](db, userTable)}
}

// FindByName retrieves a user by login name, or nil when none exists.
func (r *UserRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	defer r.Observe("find_by_name", time.Now())

	var user models.User
	const query = `SELECT id, name, password_hash, role FROM users WHERE name = $1 LIMIT 1`
	if err := r.DB().GetContext(ctx, &user, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by name: %w", err)
	}
	return &user, nil
}
