package cli

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goeditorconfig/internal/configloader"
	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
	"github.com/yaklabco/goeditorconfig/pkg/fsutil"
)

// Exit codes for goeditorconfig.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failed resolution or a non-conforming set.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a malformed .editorconfig or settings file.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrUsage marks errors caused by the command line itself.
	ErrUsage = errors.New("invalid usage")

	// ErrNonConforming is returned when --check finds a non-conforming set.
	ErrNonConforming = errors.New("resolved properties do not conform")

	// ErrReported marks errors whose details were already logged.
	ErrReported = errors.New("errors already reported")
)

func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	var parseErr *editorconfig.ParseError
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage),
		errors.Is(err, editorconfig.ErrNotFullPath),
		errors.Is(err, editorconfig.ErrVersionTooNew):
		return ExitInvalidUsage
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// ShouldLog reports whether main still has to print err.
func ShouldLog(err error) bool {
	return err != nil && !errors.Is(err, ErrReported) && !errors.Is(err, ErrNonConforming)
}
