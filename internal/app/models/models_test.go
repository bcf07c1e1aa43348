package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want PrivilegeLevel
	}{
		{"Admin", LevelAdmin},
		{"ADMIN", LevelAdmin},
		{"Support Admin", LevelSupportAdmin},
		{"support_admin", LevelSupportAdmin},
		{"Program Manager", LevelProgramManager},
		{"program-manager", LevelProgramManager},
		{"Subscriber", LevelSubscriber},
		{" subscriber ", LevelSubscriber},
		{"Guest", LevelNone},
		{"", LevelNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForRole(tt.name), tt.name)
	}
}

func TestPrivilegeLevelAllows(t *testing.T) {
	t.Parallel()

	assert.True(t, LevelAdmin.Allows(LevelAdmin))
	assert.True(t, LevelAdmin.Allows(LevelSubscriber))
	assert.True(t, LevelSupportAdmin.Allows(LevelProgramManager))
	assert.False(t, LevelProgramManager.Allows(LevelSupportAdmin))
	assert.False(t, LevelSubscriber.Allows(LevelAdmin))
	assert.False(t, LevelNone.Allows(LevelNone), "an unknown role never passes a check")
}

func TestDefaultRolesAreOrderedByLevel(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(DefaultRoles); i++ {
		assert.Greater(t, LevelForRole(DefaultRoles[i-1]), LevelForRole(DefaultRoles[i]))
	}
}

func TestFiscalHalf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-2025", FiscalYearLabel(2024))
	assert.Equal(t, "2024-2025:0", FiscalHalf(2024, FirstFiscalHalf))
	assert.Equal(t, "2023-2024:1", FiscalHalf(2023, SecondFiscalHalf))
	assert.Less(t, FiscalHalf(2023, SecondFiscalHalf), FiscalHalf(2024, FirstFiscalHalf))
}
