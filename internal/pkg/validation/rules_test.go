package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTermCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTermCode("2022-0"))
	assert.True(t, IsTermCode("2023-2"))
	assert.False(t, IsTermCode("2023-10"))
	assert.False(t, IsTermCode("22-0"))
	assert.False(t, IsTermCode("2022-0; DROP TABLE course_matrix"))
	assert.False(t, IsTermCode(""))
}

func TestIsFiscalYear(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFiscalYear("2024-2025"))
	assert.False(t, IsFiscalYear("2024-2026"), "years must be consecutive")
	assert.False(t, IsFiscalYear("2024"))
	assert.False(t, IsFiscalYear("2024-2025:0"))
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmail("jane.doe@university.edu"))
	assert.True(t, IsEmail("Jane.Doe@University.EDU"))
	assert.False(t, IsEmail("jane.doe"))
	assert.False(t, IsEmail("@university.edu"))
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCode("MBA"))
	assert.True(t, IsCode("MBA-601"))
	assert.False(t, IsCode("-MBA"))
	assert.False(t, IsCode("MBA 601"))
	assert.False(t, IsCode(strings.Repeat("A", CodeMaxLength+1)))
}
