package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goeditorconfig/pkg/config"
	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
	"github.com/yaklabco/goeditorconfig/pkg/glob"
	"github.com/yaklabco/goeditorconfig/pkg/reporter"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "init.backups.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the settings file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownColors lists valid color modes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColors = map[string]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// knownBackupModes lists valid backup mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if strings.ContainsAny(cfg.ConfFileName, `/\`) {
		result.addError("conf_file_name", cfg.ConfFileName, "must be a file name, not a path")
	}

	if cfg.Precedence != "" {
		if _, err := editorconfig.ParsePrecedence(cfg.Precedence); err != nil {
			result.addError("precedence", cfg.Precedence, err.Error())
		}
	}

	if cfg.Format != "" {
		if _, err := reporter.ParseFormat(cfg.Format); err != nil {
			result.addError("format", cfg.Format, err.Error())
		}
	}

	if cfg.Color != "" && !knownColors[cfg.Color] {
		result.addError("color", cfg.Color, fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color))
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	validateVersion(cfg, result)
	validateInit(cfg, result)
	validateExcludePatterns(cfg, result)

	return result
}

func validateVersion(cfg *config.Config, result *ValidationResult) {
	if cfg.Version == "" {
		return
	}

	version, err := editorconfig.ParseVersion(cfg.Version)
	if err != nil {
		result.addError("version", cfg.Version, err.Error())
		return
	}

	current := editorconfig.CurrentVersion()
	switch cmp := version.Compare(current); {
	case cmp > 0:
		result.addError("version", cfg.Version,
			fmt.Sprintf("version %s is newer than the supported %s", version, current))
	case cmp < 0:
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "version",
			Value:   cfg.Version,
			Message: fmt.Sprintf("version %s requested; resolution follows %s rules", version, current),
		})
	}
}

func validateInit(cfg *config.Config, result *ValidationResult) {
	if cfg.Init.MaxFiles < 0 {
		result.addError("init.max_files", cfg.Init.MaxFiles, "max_files must be >= 0 (0 means default)")
	}
	if mode := cfg.Init.Backups.Mode; mode != "" && !knownBackupModes[mode] {
		result.addError("init.backups.mode", mode, fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", mode))
	}
}

// validateExcludePatterns checks that exclude patterns compile.
func validateExcludePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			result.addError(fmt.Sprintf("exclude[%d]", i), pattern, fmt.Sprintf("invalid glob pattern: %v", err))
		}
	}
}

func (r *ValidationResult) addError(field string, value any, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
