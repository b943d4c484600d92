package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditorconfig/internal/cli"
	"github.com/yaklabco/goeditorconfig/internal/configloader"
	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
	"github.com/yaklabco/goeditorconfig/pkg/fsutil"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	})
	require.NotNil(t, cmd)

	assert.Equal(t, "goeditorconfig", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	for _, name := range []string{"resolve", "watch", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestResolveCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	resolveCmd, _, err := cmd.Find([]string{"resolve"})
	require.NoError(t, err)

	for _, name := range []string{
		"check", "conf-file", "version-target", "precedence", "format",
		"sources", "compact", "jobs", "recursive", "exclude",
	} {
		assert.NotNil(t, resolveCmd.Flags().Lookup(name), "flag %q", name)
	}

	shorthands := map[string]string{"c": "check", "f": "conf-file", "b": "version-target", "r": "recursive"}
	for short, long := range shorthands {
		flag := resolveCmd.Flags().ShorthandLookup(short)
		require.NotNil(t, flag, "shorthand -%s", short)
		assert.Equal(t, long, flag.Name)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	parseErr := &editorconfig.ParseError{File: "/p/.editorconfig", Line: 2, Err: errors.New("bad")}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"generic", errors.New("boom"), cli.ExitFailure},
		{"non-conforming", cli.ErrNonConforming, cli.ExitFailure},
		{"usage", fmt.Errorf("%w: no args", cli.ErrUsage), cli.ExitInvalidUsage},
		{"not full path", editorconfig.ErrNotFullPath, cli.ExitInvalidUsage},
		{"version too new", fmt.Errorf("x: %w", editorconfig.ErrVersionTooNew), cli.ExitInvalidUsage},
		{"parse error", parseErr, cli.ExitConfigError},
		{"joined parse error", errors.Join(cli.ErrReported, fmt.Errorf("a.go: %w", parseErr)), cli.ExitConfigError},
		{"settings error", &configloader.ValidationError{Field: "format", Value: "xml"}, cli.ExitConfigError},
		{"not found", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"permission", fsutil.ErrPermissionDenied, cli.ExitIOError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, cli.ExitCode(testCase.err))
		})
	}
}

func TestShouldLog(t *testing.T) {
	t.Parallel()

	assert.False(t, cli.ShouldLog(nil))
	assert.False(t, cli.ShouldLog(cli.ErrNonConforming))
	assert.False(t, cli.ShouldLog(errors.Join(cli.ErrReported, errors.New("x"))))
	assert.True(t, cli.ShouldLog(errors.New("x")))
}
