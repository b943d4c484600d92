package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditorconfig/pkg/config"
)

func isolated(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeSettings(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
	assert.Empty(t, result.Warnings)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".goeditorconfig.yml")
	writeSettings(t, configPath, "precedence: root\ncheck: true\nexclude:\n  - \"*.min.js\"\n")

	workDir := filepath.Join(tmpDir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(workDir, 0o755))

	result, err := Load(context.Background(), isolated(workDir))
	require.NoError(t, err)

	assert.Equal(t, config.PrecedenceRoot, result.Config.Precedence)
	assert.True(t, result.Config.CheckEnabled())
	assert.Equal(t, []string{"*.min.js"}, result.Config.Exclude)
	assert.Equal(t, ".editorconfig", result.Config.ConfFileName, "unset fields keep defaults")
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
	assert.Equal(t, configPath, result.Paths.Project)
}

func TestLoad_ProjectSearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeSettings(t, filepath.Join(tmpDir, ".goeditorconfig.yml"), "precedence: root\n")

	repo := filepath.Join(tmpDir, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	workDir := filepath.Join(repo, "pkg")
	require.NoError(t, os.MkdirAll(workDir, 0o755))

	result, err := Load(context.Background(), isolated(workDir))
	require.NoError(t, err)

	assert.Empty(t, result.Paths.Project)
	assert.Equal(t, config.PrecedenceNearest, result.Config.Precedence)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	projectPath := filepath.Join(tmpDir, ".goeditorconfig.yml")
	writeSettings(t, projectPath, "format: json\njobs: 2\n")
	customPath := filepath.Join(tmpDir, "custom.yml")
	writeSettings(t, customPath, "format: yaml\n")

	opts := isolated(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FormatYAML, result.Config.Format)
	assert.Equal(t, 2, result.Config.Jobs)
	assert.Equal(t, []string{projectPath, customPath}, result.LoadedFrom)
}

func TestLoad_JSONProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeSettings(t, filepath.Join(tmpDir, ".goeditorconfig.json"), `{"conf_file_name": ".ecrc"}`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)
	assert.Equal(t, ".ecrc", result.Config.ConfFileName)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad precedence", "precedence: sideways\n", "precedence"},
		{"bad format", "format: sarif\n", "format"},
		{"path as file name", "conf_file_name: sub/.editorconfig\n", "conf_file_name"},
		{"bad exclude", "exclude:\n  - \"[abc\"\n", "exclude[0]"},
		{"future version", "version: 99.0.0\n", "version"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, ".goeditorconfig.yml")
			writeSettings(t, configPath, testCase.content)

			_, err := Load(context.Background(), isolated(tmpDir))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, testCase.field, validationErr.Field)
			assert.Equal(t, configPath, validationErr.FilePath)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeSettings(t, filepath.Join(tmpDir, ".goeditorconfig.yml"), "flavor: gfm\n")

	_, err := Load(context.Background(), isolated(tmpDir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flavor")
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeSettings(t, filepath.Join(tmpDir, ".goeditorconfig.yml"), "check: true\nprecedence: root\n")

	opts := isolated(tmpDir)
	opts.CLIConfig = &config.Config{Check: config.Bool(false), Recursive: true}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.False(t, result.Config.CheckEnabled())
	assert.True(t, result.Config.Recursive)
	assert.Equal(t, config.PrecedenceRoot, result.Config.Precedence)
}

func TestLoad_OlderVersionWarns(t *testing.T) {
	t.Parallel()

	opts := isolated(t.TempDir())
	opts.CLIConfig = &config.Config{Version: "0.9"}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "version")
}

func TestLoad_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOEDITORCONFIG_PRECEDENCE", "root")
	t.Setenv("GOEDITORCONFIG_CHECK", "1")
	t.Setenv("GOEDITORCONFIG_JOBS", "3")
	t.Setenv("GOEDITORCONFIG_EXCLUDE", " a/** , ,b.txt")
	t.Setenv("GOEDITORCONFIG_BACKUPS_MODE", "none")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, config.PrecedenceRoot, cfg.Precedence)
	assert.True(t, cfg.CheckEnabled())
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, []string{"a/**", "b.txt"}, cfg.Exclude)
	assert.False(t, cfg.BackupsEnabled())
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("GOEDITORCONFIG_SHOW_SOURCES", "maybe")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOEDITORCONFIG_SHOW_SOURCES")
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GOEDITORCONFIG_PRECEDENCE", GetEnvVarName("precedence"))
	assert.Empty(t, GetEnvVarName("nope"))

	described := ListEnvVars()
	for suffix := range envMappings {
		assert.Contains(t, described, envVarPrefix+suffix)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Check = config.Bool(true)
	base.Exclude = []string{"a"}

	override := &config.Config{
		Check:   config.Bool(false),
		Jobs:    8,
		Exclude: []string{"b"},
		Init:    config.InitConfig{Strict: config.Bool(true)},
	}

	merged := merge(base, override)

	assert.False(t, merged.CheckEnabled())
	assert.Equal(t, 8, merged.Jobs)
	assert.Equal(t, []string{"b"}, merged.Exclude)
	assert.True(t, config.BoolValue(merged.Init.Strict, false))
	assert.Equal(t, "sidecar", merged.Init.Backups.Mode)

	assert.True(t, base.CheckEnabled(), "base is not modified")
	assert.Equal(t, []string{"a"}, base.Exclude)

	assert.Nil(t, MergeAll())
	assert.Same(t, base, MergeAll(base))
}

func TestValidationResult_AllMessages(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Color: "purple", Jobs: -1, Version: "0.1"})
	assert.False(t, result.Valid())
	assert.True(t, result.HasWarnings())
	assert.Len(t, result.Errors, 2)

	messages := result.AllMessages()
	require.Len(t, messages, 3)
	assert.Contains(t, messages[0], "color")
	assert.Contains(t, messages[1], "jobs")
	assert.Contains(t, messages[2], "warning: version")
}
