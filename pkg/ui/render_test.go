package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cfgsplit/pkg/config"
	"github.com/arthur-debert/cfgsplit/pkg/environment"
	"github.com/arthur-debert/cfgsplit/pkg/split"
	"github.com/arthur-debert/cfgsplit/pkg/ui"
)

func resolvedFixture() *config.Resolved {
	return &config.Resolved{
		Environment: environment.Development,
		Flags: split.Flags{
			split.ID("test"):  {Label: "Test", Weight: 0},
			split.ID("dev"):   {Label: "Development", Weight: 10, Status: true},
			split.ID("local"): {Label: "Local", Weight: 20, Status: true},
		},
		Applied: []string{split.ID("dev"), split.ID("local")},
		Effective: map[string]interface{}{
			"system":  map[string]interface{}{"error_level": "verbose"},
			"modules": []interface{}{"node", "devel"},
		},
		Sources: []string{"defaults", "env"},
	}
}

func TestBuildSplitsReport(t *testing.T) {
	report := ui.BuildSplitsReport(resolvedFixture())

	assert.Equal(t, "dev", report.Environment)
	assert.Equal(t, split.ID("dev"), report.Split)
	assert.Equal(t, []string{split.ID("dev"), split.ID("local")}, report.Applied)

	require.Len(t, report.Splits, 3)
	assert.Equal(t, "test", report.Splits[0].MachineName)
	assert.Equal(t, "dev", report.Splits[1].MachineName)
	assert.True(t, report.Splits[1].EnabledByEnvironment)
	assert.False(t, report.Splits[2].EnabledByEnvironment)
	assert.True(t, report.Splits[2].Status)
}

func TestRenderSplitsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderSplits(&buf, resolvedFixture(), ui.FormatText))

	out := buf.String()
	assert.Contains(t, out, "Environment: dev")
	assert.Contains(t, out, "SPLIT")
	assert.Contains(t, out, "Development")
	assert.Contains(t, out, "enabled")
	assert.Contains(t, out, "disabled")
}

func TestRenderSplitsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderSplits(&buf, resolvedFixture(), ui.FormatJSON))

	var report ui.SplitsReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "dev", report.Environment)
	assert.Len(t, report.Splits, 3)
}

func TestRenderResolve(t *testing.T) {
	t.Run("matched_environment_prints_id", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderResolve(&buf, resolvedFixture(), ui.FormatText))
		assert.Equal(t, split.ID("dev")+"\n", buf.String())
	})

	t.Run("unmatched_environment_prints_nothing", func(t *testing.T) {
		r := resolvedFixture()
		r.Environment = environment.Production

		var buf bytes.Buffer
		require.NoError(t, ui.RenderResolve(&buf, r, ui.FormatText))
		assert.Empty(t, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderResolve(&buf, resolvedFixture(), ui.FormatYAML))

		var got map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, map[string]string{"environment": "dev", "split": split.ID("dev")}, got)
	})
}

func TestRenderConfig(t *testing.T) {
	cfg := resolvedFixture().Effective

	t.Run("text_defaults_to_toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderConfig(&buf, cfg, ui.FormatText))

		var got map[string]interface{}
		require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "verbose", got["system"].(map[string]interface{})["error_level"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderConfig(&buf, cfg, ui.FormatYAML))
		assert.Contains(t, buf.String(), "error_level: verbose")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderConfig(&buf, cfg, ui.FormatJSON))
		assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
		assert.Contains(t, buf.String(), `"devel"`)
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderConfig(&buf, nil, ui.FormatText))
		assert.Equal(t, "# empty configuration\n", buf.String())
	})
}

func TestRenderValue(t *testing.T) {
	t.Run("scalar_text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderValue(&buf, "system.error_level", "verbose", ui.FormatText))
		assert.Equal(t, "verbose\n", buf.String())
	})

	t.Run("scalar_json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, ui.RenderValue(&buf, "system.error_level", "verbose", ui.FormatJSON))
		assert.JSONEq(t, `{"system.error_level":"verbose"}`, buf.String())
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		table := map[string]interface{}{"error_level": "verbose"}
		require.NoError(t, ui.RenderValue(&buf, "system", table, ui.FormatYAML))
		assert.Equal(t, "error_level: verbose\n", buf.String())
	})
}

func TestExplainMarkdown(t *testing.T) {
	md := ui.ExplainMarkdown(resolvedFixture())

	assert.Contains(t, md, "| ci | `config_split.config_split.ci` |")
	assert.Contains(t, md, "| prod | _none_ |")
	assert.Contains(t, md, "- Enabled by environment: `config_split.config_split.dev`")
	assert.Contains(t, md, "`config_split.config_split.local` (weight 20)")
	assert.Contains(t, md, "  - defaults\n")
}

func TestMarkdownRendererPassThrough(t *testing.T) {
	r := ui.NewMarkdownRenderer()
	assert.Equal(t, "# Title\n", r.Render("# Title\n", ui.FormatText))
}

func TestRenderExplainText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderExplain(&buf, resolvedFixture(), ui.FormatText))
	assert.True(t, strings.HasPrefix(buf.String(), "# Configuration splits"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "enabled", ui.StatusLabel(true, ui.FormatText))
	assert.Equal(t, "disabled", ui.StatusLabel(false, ui.FormatJSON))
	assert.Contains(t, ui.StatusLabel(true, ui.FormatTerminal), "enabled")
}
