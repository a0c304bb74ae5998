package split

import (
	"testing"

	"github.com/arthur-debert/cfgsplit/pkg/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		env    environment.Environment
		wantID string
		wantOK bool
	}{
		{environment.Test, "config_split.config_split.test", true},
		{environment.Development, "config_split.config_split.dev", true},
		{environment.CI, "config_split.config_split.ci", true},
		{environment.Local, "config_split.config_split.local", true},
		{environment.Production, "", false},
		{environment.Environment("staging"), "", false},
		{environment.Environment(""), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			id, ok := Name(tt.env)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestApplyKnownEnvironments(t *testing.T) {
	all := []string{ID("test"), ID("dev"), ID("ci"), ID("local")}

	for _, env := range []environment.Environment{
		environment.Test, environment.Development, environment.CI, environment.Local,
	} {
		t.Run(env.String(), func(t *testing.T) {
			flags := Flags{}
			for _, id := range all {
				flags[id] = Split{Status: false, Weight: 5}
			}

			Apply(env, flags)

			want, _ := Name(env)
			for _, id := range all {
				if id == want {
					assert.True(t, flags[id].Status, id)
				} else {
					assert.False(t, flags[id].Status, id)
				}
				assert.Equal(t, 5, flags[id].Weight, id)
			}
			assert.Len(t, flags, len(all))
		})
	}
}

func TestApplyScenarios(t *testing.T) {
	t.Run("test_on_empty_flags_creates_entry", func(t *testing.T) {
		flags := Flags{}
		Apply(environment.Test, flags)
		assert.Equal(t, Flags{"config_split.config_split.test": {Status: true}}, flags)
	})

	t.Run("development_flips_existing_entry", func(t *testing.T) {
		flags := Flags{"config_split.config_split.dev": {Status: false}}
		Apply(environment.Development, flags)
		assert.Equal(t, Flags{"config_split.config_split.dev": {Status: true}}, flags)
	})

	t.Run("production_leaves_flags_unchanged", func(t *testing.T) {
		flags := Flags{"config_split.config_split.ci": {Status: false}}
		Apply(environment.Production, flags)
		assert.Equal(t, Flags{"config_split.config_split.ci": {Status: false}}, flags)
	})

	t.Run("local_leaves_unrelated_entries", func(t *testing.T) {
		flags := Flags{
			"config_split.config_split.test": {Status: true, Label: "Test"},
			"config_split.config_split.dev":  {Status: false, Label: "Dev"},
		}
		Apply(environment.Local, flags)
		assert.Equal(t, Flags{
			"config_split.config_split.test":  {Status: true, Label: "Test"},
			"config_split.config_split.dev":   {Status: false, Label: "Dev"},
			"config_split.config_split.local": {Status: true},
		}, flags)
	})
}

func TestApplyPreservesRecordFields(t *testing.T) {
	overrides := map[string]interface{}{"debug": true}
	flags := Flags{ID("ci"): {Label: "CI", Weight: 3, Overrides: overrides}}

	Apply(environment.CI, flags)

	got := flags[ID("ci")]
	assert.True(t, got.Status)
	assert.Equal(t, "CI", got.Label)
	assert.Equal(t, 3, got.Weight)
	assert.Equal(t, overrides, got.Overrides)
}

func TestApplyNeverClearsStatus(t *testing.T) {
	flags := Flags{ID("dev"): {Status: true}, ID("local"): {Status: true}}
	Apply(environment.Test, flags)

	assert.True(t, flags[ID("dev")].Status)
	assert.True(t, flags[ID("local")].Status)
	assert.True(t, flags[ID("test")].Status)
}

func TestApplyIsIdempotent(t *testing.T) {
	for _, env := range []environment.Environment{
		environment.Test, environment.Local, environment.Production, "unknown",
	} {
		t.Run(env.String(), func(t *testing.T) {
			once := Flags{ID("dev"): {Status: false, Weight: 1}}
			twice := Flags{ID("dev"): {Status: false, Weight: 1}}

			Apply(env, once)
			Apply(env, twice)
			Apply(env, twice)

			assert.Equal(t, once, twice)
		})
	}
}

func TestApplyNilFlags(t *testing.T) {
	require.NotPanics(t, func() {
		Apply(environment.Test, nil)
		Apply(environment.Production, nil)
	})
}

func TestEnabledOrdering(t *testing.T) {
	flags := Flags{
		ID("local"): {Status: true, Weight: 20},
		ID("dev"):   {Status: true, Weight: 10},
		ID("ci"):    {Status: true, Weight: 10},
		ID("test"):  {Status: false, Weight: 0},
	}

	assert.Equal(t, []string{ID("ci"), ID("dev"), ID("local")}, Enabled(flags))
	assert.Equal(t, []string{ID("test"), ID("ci"), ID("dev"), ID("local")}, IDs(flags))
	assert.Empty(t, Enabled(Flags{}))
}

func TestMachineName(t *testing.T) {
	assert.Equal(t, "dev", MachineName(ID("dev")))
	assert.Equal(t, "custom", MachineName("custom"))
}
