package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var userSorts = sortColumns{
	fields: map[string]string{
		"uid":         "u.uid",
		"email":       "u.email",
		"displayName": "u.display_name",
		"firstName":   "u.first_name",
		"lastName":    "u.last_name",
		"role":        "r.name",
	},
	defaultColumn: "u.email",
}

// UserFilter narrows the user list
type UserFilter struct {
	RoleID *int64
}

// UserRepository handles database operations for users
type UserRepository struct {
	db db.Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(db db.Querier) *UserRepository {
	return &UserRepository{db: db}
}

// selectQuery joins roles so every user carries its role name
func (r *UserRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"u.uid", "u.display_name", "u.email", "u.first_name", "u.last_name", "u.role_id", "r.name",
	).From("users u").
		Join("roles r ON r.id = u.role_id")
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UID, &user.DisplayName, &user.Email, &user.FirstName, &user.LastName,
		&user.RoleID, &user.RoleName,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	insert := psql.Insert("users").
		Columns("uid", "display_name", "email", "first_name", "last_name", "role_id").
		Values(user.UID, user.DisplayName, user.Email, user.FirstName, user.LastName, user.RoleID)
	return insertReturning(ctx, r.db, insert, "uid", &user.UID, "user")
}

// GetUserByUID retrieves a user and role by identity-provider uid
func (r *UserRepository) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"u.uid": uid}), scanUser, "user")
}

// List retrieves users
func (r *UserRepository) List(ctx context.Context, filter UserFilter, opts ListOptions) ([]*models.User, int64, error) {
	query := r.selectQuery()
	count := psql.Select("count(*)").From("users u")
	if filter.RoleID != nil {
		query = query.Where(squirrel.Eq{"u.role_id": *filter.RoleID})
		count = count.Where(squirrel.Eq{"u.role_id": *filter.RoleID})
	}
	return selectList(ctx, r.db, query, count, userSorts, opts, scanUser, "user")
}

// Update updates a user's profile and role
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	update := psql.Update("users").
		Set("display_name", user.DisplayName).
		Set("email", user.Email).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("role_id", user.RoleID).
		Where(squirrel.Eq{"uid": user.UID})
	return execUpdate(ctx, r.db, update, "user")
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	return execDelete(ctx, r.db, "users", "uid", uid, "user")
}
