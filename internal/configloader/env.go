package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/goeditorconfig/pkg/config"
)

// envVarPrefix is the prefix for all environment variables.
const envVarPrefix = "GOEDITORCONFIG_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"CONF_FILE_NAME":  {field: "conf_file_name", typ: envTypeString},
	"PRECEDENCE":      {field: "precedence", typ: envTypeString},
	"VERSION":         {field: "version", typ: envTypeString},
	"FORMAT":          {field: "format", typ: envTypeString},
	"COLOR":           {field: "color", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"CHECK":           {field: "check", typ: envTypeBool},
	"SHOW_SOURCES":    {field: "show_sources", typ: envTypeBool},
	"RECURSIVE":       {field: "recursive", typ: envTypeBool},
	"EXCLUDE":         {field: "exclude", typ: envTypeSlice},
	"INIT_STRICT":     {field: "init.strict", typ: envTypeBool},
	"BACKUPS_ENABLED": {field: "init.backups.enabled", typ: envTypeBool},
	"BACKUPS_MODE":    {field: "init.backups.mode", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOEDITORCONFIG_
// (e.g., GOEDITORCONFIG_PRECEDENCE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "conf_file_name":
		cfg.ConfFileName = value
	case "precedence":
		cfg.Precedence = value
	case "version":
		cfg.Version = value
	case "format":
		cfg.Format = value
	case "color":
		cfg.Color = value
	case "init.backups.mode":
		cfg.Init.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "check":
		cfg.Check = config.Bool(value)
	case "show_sources":
		cfg.ShowSources = config.Bool(value)
	case "recursive":
		cfg.Recursive = value
	case "init.strict":
		cfg.Init.Strict = config.Bool(value)
	case "init.backups.enabled":
		cfg.Init.Backups.Enabled = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "exclude":
		cfg.Exclude = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOEDITORCONFIG_CONF_FILE_NAME":  "File looked up in every ancestor directory",
		"GOEDITORCONFIG_PRECEDENCE":      "Override direction: nearest or root",
		"GOEDITORCONFIG_VERSION":         "Behaviour version to request (X.Y.Z)",
		"GOEDITORCONFIG_FORMAT":          "Output format: text, json, or yaml",
		"GOEDITORCONFIG_COLOR":           "Color mode: auto, always, or never",
		"GOEDITORCONFIG_JOBS":            "Number of parallel workers (0 = auto)",
		"GOEDITORCONFIG_CHECK":           "Validate resolved sets: true or false",
		"GOEDITORCONFIG_SHOW_SOURCES":    "List contributing files: true or false",
		"GOEDITORCONFIG_RECURSIVE":       "Expand directory arguments: true or false",
		"GOEDITORCONFIG_EXCLUDE":         "Comma-separated list of exclude patterns",
		"GOEDITORCONFIG_INIT_STRICT":     "Generate conforming sections only: true or false",
		"GOEDITORCONFIG_BACKUPS_ENABLED": "Back up a file init overwrites: true or false",
		"GOEDITORCONFIG_BACKUPS_MODE":    "Backup mode: sidecar or none",
	}
}
