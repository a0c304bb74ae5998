package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Environment
	}{
		{"canonical_test", "test", Test},
		{"alias_development", "development", Development},
		{"upper_case_dev", "DEV", Development},
		{"padded_ci", "  ci\n", CI},
		{"alias_ci_dashed", "continuous-integration", CI},
		{"alias_ci_underscored", "Continuous_Integration", CI},
		{"local", "local", Local},
		{"alias_production", "production", Production},
		{"unknown_is_carried", "Staging", Environment("staging")},
		{"empty", "", Environment("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestIsKnown(t *testing.T) {
	for _, env := range Known() {
		assert.True(t, env.IsKnown(), env.String())
	}
	assert.False(t, Environment("staging").IsKnown())
	assert.False(t, Environment("").IsKnown())
}

func TestKnownReturnsCopy(t *testing.T) {
	got := Known()
	assert.Equal(t, []Environment{Test, Development, CI, Local, Production}, got)

	got[0] = "mutated"
	assert.Equal(t, Test, Known()[0])
}
