package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	t.Parallel()

	unique := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "campuses_name_key"}
	fk := &pgconn.PgError{Code: ForeignKeyViolation}
	wrapped := fmt.Errorf("insert campus: %w", unique)

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(wrapped))
	assert.True(t, IsDuplicateConstraintError(wrapped, "campuses_name_key"))
	assert.False(t, IsDuplicateConstraintError(wrapped, "campuses_code_key"))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}
