package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"general", "student", "institution", "admin"} {
		role, err := ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, Role(valid), role)
	}

	for _, invalid := range []string{"", "superuser", "Admin", "STUDENT", "staff"} {
		_, err := ParseRole(invalid)
		assert.Error(t, err, "role %q must be rejected", invalid)
	}
}

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		actor    Role
		required Role
		want     bool
	}{
		{RoleGeneral, RoleGeneral, true},
		{RoleGeneral, RoleStudent, false},
		{RoleGeneral, RoleInstitution, false},
		{RoleGeneral, RoleAdmin, false},
		{RoleStudent, RoleStudent, true},
		{RoleStudent, RoleGeneral, false},
		{RoleStudent, RoleAdmin, false},
		{RoleInstitution, RoleInstitution, true},
		{RoleInstitution, RoleStudent, false},
		{RoleAdmin, RoleGeneral, true},
		{RoleAdmin, RoleStudent, true},
		{RoleAdmin, RoleInstitution, true},
		{RoleAdmin, RoleAdmin, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.actor.Satisfies(tt.required),
			"%s satisfies %s", tt.actor, tt.required)
	}
}
