// Package config defines the settings of goeditorconfig.
// These types are pure data structures; loading and validation live in
// internal/configloader.
package config

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Override directions.
const (
	PrecedenceNearest = "nearest"
	PrecedenceRoot    = "root"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// BackupsConfig controls backups taken before init overwrites a file.
type BackupsConfig struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Mode    string `json:"mode,omitempty" yaml:"mode,omitempty"` // "sidecar" or "none"
}

// InitConfig holds the settings of the init command.
type InitConfig struct {
	// Strict limits generated sections to properties the conformance
	// check accepts.
	Strict *bool `json:"strict,omitempty" yaml:"strict,omitempty"`

	// MaxFiles bounds the number of files surveyed (0 = default).
	MaxFiles int `json:"max_files,omitempty" yaml:"max_files,omitempty"`

	// Backups configures what happens to an existing .editorconfig.
	Backups BackupsConfig `json:"backups,omitempty" yaml:"backups,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	// ConfFileName is the file looked up in every ancestor directory.
	ConfFileName string `json:"conf_file_name,omitempty" yaml:"conf_file_name,omitempty"`

	// Precedence is "nearest" or "root".
	Precedence string `json:"precedence,omitempty" yaml:"precedence,omitempty"`

	// Version pins the behaviour level ("X.Y.Z"); empty means current.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Format specifies the output format.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Color is "auto", "always" or "never".
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// Jobs specifies the number of parallel workers (0 = GOMAXPROCS).
	Jobs int `json:"jobs,omitempty" yaml:"jobs,omitempty"`

	// Check validates every resolved set.
	Check *bool `json:"check,omitempty" yaml:"check,omitempty"`

	// ShowSources lists the config files each set came from.
	ShowSources *bool `json:"show_sources,omitempty" yaml:"show_sources,omitempty"`

	// Exclude holds glob patterns for files to skip when recursing.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Init configures the init command.
	Init InitConfig `json:"init,omitempty" yaml:"init,omitempty"`

	// CLI-level options (not persisted to config files).

	// Recursive expands directory arguments.
	Recursive bool `json:"-" yaml:"-"`

	// Force allows init to overwrite an existing file.
	Force bool `json:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ConfFileName: ".editorconfig",
		Precedence:   PrecedenceNearest,
		Format:       FormatText,
		Color:        ColorAuto,
		Jobs:         0, // 0 means use GOMAXPROCS
		Check:        Bool(false),
		ShowSources:  Bool(false),
		Init: InitConfig{
			Strict: Bool(false),
			Backups: BackupsConfig{
				Enabled: Bool(true),
				Mode:    "sidecar",
			},
		},
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// BoolValue dereferences p, returning def when p is nil.
func BoolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// CheckEnabled reports whether conformance checking is on.
func (c *Config) CheckEnabled() bool {
	return BoolValue(c.Check, false)
}

// SourcesEnabled reports whether sources are listed.
func (c *Config) SourcesEnabled() bool {
	return BoolValue(c.ShowSources, false)
}

// BackupsEnabled reports whether init backs up a file it overwrites.
func (c *Config) BackupsEnabled() bool {
	return BoolValue(c.Init.Backups.Enabled, true) && c.Init.Backups.Mode != "none"
}
