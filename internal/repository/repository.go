package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-registry-api/internal/models"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

// QueryObserver receives the duration of each statement issued by a repository.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Table describes where an entity lives and which columns a full-row write replaces.
// The identity column is always "id" and is never part of Columns.
type Table struct {
	Name    string
	Columns []string
}

func (t Table) selectList() string {
	return "id, " + strings.Join(t.Columns, ", ")
}

func (t Table) insertQuery() string {
	named := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		named[i] = ":" + col
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", t.Name, strings.Join(t.Columns, ", "), strings.Join(named, ", "))
}

func (t Table) updateQuery() string {
	sets := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		sets[i] = col + " = :" + col
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", t.Name, strings.Join(sets, ", "))
}

// Repository provides create, update, fetch and delete for any entity with an integer identity.
// P is the pointer type of T so the identity can be assigned in place.
type Repository[T any, P interface {
	*T
	models.Entity
}] struct {
	db       *sqlx.DB
	table    Table
	observer QueryObserver
}

// NewRepository constructs a generic repository bound to the given table.
func NewRepository[T any, P interface {
	*T
	models.Entity
}](db *sqlx.DB, table Table) *Repository[T, P] {
	return &Repository[T, P]{db: db, table: table}
}

// WithObserver attaches a query observer and returns the repository for chaining.
func (r *Repository[T, P]) WithObserver(observer QueryObserver) *Repository[T, P] {
	r.observer = observer
	return r
}

// Observe reports the duration of a statement started at start.
func (r *Repository[T, P]) Observe(operation string, start time.Time) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveDBQuery(r.table.Name+"."+operation, time.Since(start))
}

// DB exposes the underlying handle to specialised repositories.
func (r *Repository[T, P]) DB() *sqlx.DB {
	return r.db
}

// Table returns the descriptor the repository writes to.
func (r *Repository[T, P]) Table() Table {
	return r.table
}

// Create inserts entity and assigns its identity. Duplicate policy belongs to callers.
func (r *Repository[T, P]) Create(ctx context.Context, entity P) error {
	defer r.Observe("create", time.Now())

	rows, err := r.db.NamedQueryContext(ctx, r.table.insertQuery(), entity)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.table.Name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("create %s: %w", r.table.Name, err)
		}
		return fmt.Errorf("create %s: no identity returned", r.table.Name)
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return fmt.Errorf("create %s: %w", r.table.Name, err)
	}
	entity.SetIdentity(id)
	return nil
}

// Update replaces every mutable column of the row matching the entity identity.
func (r *Repository[T, P]) Update(ctx context.Context, entity P) error {
	defer r.Observe("update", time.Now())

	result, err := r.db.NamedExecContext(ctx, r.table.updateQuery(), entity)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table.Name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table.Name, err)
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s %d not found", r.table.Name, entity.Identity()))
	}
	return nil
}

// FindByID returns the matching record, or nil without error when it does not exist.
func (r *Repository[T, P]) FindByID(ctx context.Context, id int64) (P, error) {
	defer r.Observe("find_by_id", time.Now())

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.table.selectList(), r.table.Name)
	var entity T
	var absent P
	if err := r.db.GetContext(ctx, &entity, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return absent, nil
		}
		return absent, fmt.Errorf("find %s by id: %w", r.table.Name, err)
	}
	return P(&entity), nil
}

// FindAll returns every record ordered by identity.
func (r *Repository[T, P]) FindAll(ctx context.Context) ([]T, error) {
	defer r.Observe("find_all", time.Now())

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", r.table.selectList(), r.table.Name)
	entities := make([]T, 0)
	if err := r.db.SelectContext(ctx, &entities, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table.Name, err)
	}
	return entities, nil
}

// Delete removes the record with the given identity. A missing record is not an error.
func (r *Repository[T, P]) Delete(ctx context.Context, id int64) error {
	defer r.Observe("delete", time.Now())

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table.Name)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete %s: %w", r.table.Name, err)
	}
	return nil
}
