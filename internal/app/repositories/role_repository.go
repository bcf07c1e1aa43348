package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
)

var roleSorts = sortColumns{
	fields: map[string]string{
		"id":   "id",
		"name": "name",
	},
	defaultColumn: "id",
}

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db db.Querier
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db db.Querier) *RoleRepository {
	return &RoleRepository{db: db}
}

func scanRole(row pgx.Row) (*models.Role, error) {
	var role models.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByID retrieves a role by id
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	query := psql.Select("id", "name").From("roles").Where(squirrel.Eq{"id": id})
	return selectOne(ctx, r.db, query, scanRole, "role")
}

// List retrieves roles
func (r *RoleRepository) List(ctx context.Context, opts ListOptions) ([]*models.Role, int64, error) {
	query := psql.Select("id", "name").From("roles")
	count := psql.Select("count(*)").From("roles")
	return selectList(ctx, r.db, query, count, roleSorts, opts, scanRole, "role")
}

// Ensure inserts the named role unless it exists. It reports whether a row
// was created.
func (r *RoleRepository) Ensure(ctx context.Context, name string) (bool, error) {
	var id int64
	insert := psql.Insert("roles").Columns("name").Values(name)
	err := insertReturning(ctx, r.db, insert, "id", &id, "role")
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
