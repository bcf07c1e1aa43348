package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/learntech/courseplanner/internal/db"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	"github.com/learntech/courseplanner/internal/pkg/dberrors"
	"github.com/learntech/courseplanner/internal/pkg/helpers"
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// psql builds every statement with PostgreSQL placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ListOptions controls ordering and optional paging of list queries.
// Page 0 returns every matching row.
type ListOptions struct {
	Sort  string
	Order string
	Page  int
	Size  int
}

// Paged reports whether a page was requested
func (o ListOptions) Paged() bool {
	return o.Page > 0
}

// sortColumns whitelists the API sort fields of one entity
type sortColumns struct {
	fields        map[string]string
	defaultColumn string
}

// orderBy resolves an API sort field and direction into an ORDER BY term
func (s sortColumns) orderBy(field, order string) (string, error) {
	column := s.defaultColumn
	if field != "" {
		c, ok := s.fields[field]
		if !ok {
			return "", &apperrors.CustomError{
				Err:     apperrors.ErrUnknownSortField,
				Message: fmt.Sprintf("cannot sort by %q", field),
				Field:   "sort",
			}
		}
		column = c
	}

	switch strings.ToLower(order) {
	case "", "asc":
		return column + " ASC", nil
	case "desc":
		return column + " DESC", nil
	default:
		return "", &apperrors.CustomError{
			Err:     apperrors.ErrBadRequest,
			Message: fmt.Sprintf("invalid sort order %q", order),
			Field:   "order",
		}
	}
}

// selectOne runs a single-row query; no row maps to a not found error
func selectOne[T any](ctx context.Context, q db.Querier, query squirrel.SelectBuilder, scan func(pgx.Row) (*T, error), entity string) (*T, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", entity).Msg("Error building select SQL")
		return nil, err
	}

	item, err := scan(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(entity + " not found")
		}
		logger.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Error executing select query")
		return nil, fmt.Errorf("error retrieving %s: %w", entity, err)
	}
	return item, nil
}

// selectList orders, optionally pages and runs a list query. count must carry
// the same filters as query. The returned total counts every matching row.
func selectList[T any](ctx context.Context, q db.Querier, query, count squirrel.SelectBuilder, sorts sortColumns, opts ListOptions, scan func(pgx.Row) (*T, error), entity string) ([]*T, int64, error) {
	orderBy, err := sorts.orderBy(opts.Sort, opts.Order)
	if err != nil {
		return nil, 0, err
	}
	query = query.OrderBy(orderBy)

	var total int64
	if opts.Paged() {
		countSQL, countArgs, err := count.ToSql()
		if err != nil {
			logger.Error().Err(err).Str("entity", entity).Msg("Error building count query SQL")
			return nil, 0, err
		}
		if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			logger.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Error executing count query")
			return nil, 0, fmt.Errorf("error counting %s: %w", entity, err)
		}
		if total == 0 {
			return []*T{}, 0, nil
		}

		offset, limit := helpers.CalculateOffsetLimit(opts.Page, opts.Size)
		query = query.Limit(uint64(limit)).Offset(offset)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", entity).Msg("Error building list SQL")
		return nil, 0, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Error executing list query")
		return nil, 0, fmt.Errorf("error listing %s: %w", entity, err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			logger.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Error scanning row")
			return nil, 0, fmt.Errorf("error scanning %s: %w", entity, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}

	if !opts.Paged() {
		total = int64(len(items))
	}
	return items, total, nil
}

// insertReturning runs an INSERT ... ON CONFLICT DO NOTHING RETURNING <key>.
// No returned row means the unique key already exists.
func insertReturning(ctx context.Context, q db.Querier, insert squirrel.InsertBuilder, key string, dest any, entity string) error {
	sqlStr, args, err := insert.
		Suffix("ON CONFLICT DO NOTHING RETURNING " + key).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", entity).Msg("Error building insert SQL")
		return err
	}

	if err := q.QueryRow(ctx, sqlStr, args...).Scan(dest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewAlreadyExistsError(entity + " already exists")
		}
		return mapWriteError(ctx, err, entity)
	}
	return nil
}

// execUpdate runs an UPDATE; zero affected rows maps to not found
func execUpdate(ctx context.Context, q db.Querier, update squirrel.UpdateBuilder, entity string) error {
	sqlStr, args, err := update.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", entity).Msg("Error building update SQL")
		return err
	}

	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapWriteError(ctx, err, entity)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError(entity + " not found")
	}
	return nil
}

// execDelete deletes by key. Deleting a missing row is not an error.
func execDelete(ctx context.Context, q db.Querier, table, keyColumn string, key any, entity string) error {
	sqlStr, args, err := psql.Delete(table).
		Where(squirrel.Eq{keyColumn: key}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("entity", entity).Msg("Error building delete SQL")
		return err
	}

	if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return &apperrors.CustomError{
				Err:     apperrors.ErrResourceReferenced,
				Message: entity + " is still referenced and cannot be deleted",
			}
		}
		logger.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s: %w", entity, err)
	}
	return nil
}

// uniqueConstraintFields names the request field behind each unique constraint
var uniqueConstraintFields = map[string]string{
	"roles_name_key":                     "name",
	"users_email_key":                    "email",
	"campuses_name_key":                  "name",
	"campuses_code_key":                  "code",
	"faculty_email_key":                  "email",
	"instructional_designers_email_key":  "email",
	"media_leads_email_key":              "email",
	"programs_code_key":                  "code",
	"courses_code_key":                   "code",
	"program_managers_email_program_key": "programId",
	"course_matrix_offering_key":         "fiscalYear",
}

// mapWriteError translates constraint violations of inserts and updates
func mapWriteError(ctx context.Context, err error, entity string) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		for constraint, field := range uniqueConstraintFields {
			if dberrors.IsDuplicateConstraintError(err, constraint) {
				return &apperrors.CustomError{
					Err:     apperrors.ErrResourceAlreadyExists,
					Message: fmt.Sprintf("%s with this %s already exists", entity, field),
					Field:   field,
				}
			}
		}
		return apperrors.NewAlreadyExistsError(entity + " already exists")
	case dberrors.IsForeignKeyViolation(err):
		return &apperrors.CustomError{
			Err:     apperrors.ErrInvalidReference,
			Message: entity + " references a record that does not exist",
		}
	default:
		logger.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Error executing write query")
		return fmt.Errorf("error writing %s: %w", entity, err)
	}
}
