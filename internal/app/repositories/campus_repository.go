package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/db"
)

var campusSorts = sortColumns{
	fields: map[string]string{
		"id":   "id",
		"code": "code",
		"name": "name",
	},
	defaultColumn: "name",
}

// CampusRepository handles database operations for campuses
type CampusRepository struct {
	db db.Querier
}

// NewCampusRepository creates a new campus repository
func NewCampusRepository(db db.Querier) *CampusRepository {
	return &CampusRepository{db: db}
}

func (r *CampusRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select("id", "code", "name").From("campuses")
}

func scanCampus(row pgx.Row) (*models.Campus, error) {
	var campus models.Campus
	if err := row.Scan(&campus.ID, &campus.Code, &campus.Name); err != nil {
		return nil, err
	}
	return &campus, nil
}

// Create inserts a campus and sets its id
func (r *CampusRepository) Create(ctx context.Context, campus *models.Campus) error {
	insert := psql.Insert("campuses").
		Columns("code", "name").
		Values(campus.Code, campus.Name)
	return insertReturning(ctx, r.db, insert, "id", &campus.ID, "campus")
}

// GetByID retrieves a campus by id
func (r *CampusRepository) GetByID(ctx context.Context, id int64) (*models.Campus, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"id": id}), scanCampus, "campus")
}

// GetByCode retrieves a campus by code
func (r *CampusRepository) GetByCode(ctx context.Context, code string) (*models.Campus, error) {
	return selectOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"code": code}), scanCampus, "campus")
}

// List retrieves campuses
func (r *CampusRepository) List(ctx context.Context, opts ListOptions) ([]*models.Campus, int64, error) {
	count := psql.Select("count(*)").From("campuses")
	return selectList(ctx, r.db, r.selectQuery(), count, campusSorts, opts, scanCampus, "campus")
}

// Update updates a campus
func (r *CampusRepository) Update(ctx context.Context, campus *models.Campus) error {
	update := psql.Update("campuses").
		Set("code", campus.Code).
		Set("name", campus.Name).
		Where(squirrel.Eq{"id": campus.ID})
	return execUpdate(ctx, r.db, update, "campus")
}

// Delete deletes a campus
func (r *CampusRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, "campuses", "id", id, "campus")
}
