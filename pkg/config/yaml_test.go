package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditorconfig/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies pointers and slices", func(t *testing.T) {
		original := config.NewConfig()
		original.Exclude = []string{"*.min.js", "testdata/**"}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		*clone.Check = true
		*clone.Init.Backups.Enabled = false
		clone.Exclude[0] = "changed"

		assert.False(t, original.CheckEnabled())
		assert.True(t, original.BackupsEnabled())
		assert.Equal(t, "*.min.js", original.Exclude[0])
	})

	t.Run("keeps CLI-only fields", func(t *testing.T) {
		original := &config.Config{Recursive: true, Force: true}
		clone := original.Clone()
		assert.True(t, clone.Recursive)
		assert.True(t, clone.Force)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
conf_file_name: .ecrc
precedence: root
format: json
jobs: 4
check: true
exclude:
  - "vendor/**"
init:
  strict: true
  backups:
    mode: none
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, ".ecrc", cfg.ConfFileName)
	assert.Equal(t, config.PrecedenceRoot, cfg.Precedence)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.CheckEnabled())
	assert.False(t, cfg.SourcesEnabled())
	assert.Equal(t, []string{"vendor/**"}, cfg.Exclude)
	assert.True(t, config.BoolValue(cfg.Init.Strict, false))
	assert.False(t, cfg.BackupsEnabled())
}

func TestFromYAML_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestFromYAML_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("precedance: root\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precedance")
}

func TestFromYAML_AcceptsJSON(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`{"precedence": "root", "check": false}`))
	require.NoError(t, err)
	assert.Equal(t, config.PrecedenceRoot, cfg.Precedence)
	require.NotNil(t, cfg.Check)
	assert.False(t, *cfg.Check)
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Exclude = []string{"build/**"}
	original.Recursive = true

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "recursive")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	original.Recursive = false
	assert.Equal(t, original, parsed)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	data, err := (&config.Config{Format: config.FormatYAML}).ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.Equal(t, "# header\n\nformat: yaml\n", string(data))
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal yaml parses", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(data), config.DefaultTemplateHeader())

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, ".editorconfig", cfg.ConfFileName)
	})

	t.Run("full yaml holds defaults", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig(), cfg)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateOptions{Format: config.FormatJSON})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "nearest", decoded["precedence"])
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := config.GenerateTemplate(config.TemplateOptions{Format: "toml"})
		require.Error(t, err)
	})
}
