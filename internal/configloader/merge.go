package configloader

import "github.com/yaklabco/goeditorconfig/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.ConfFileName != "" {
		result.ConfFileName = override.ConfFileName
	}
	if override.Precedence != "" {
		result.Precedence = override.Precedence
	}
	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Check != nil {
		result.Check = config.Bool(*override.Check)
	}
	if override.ShowSources != nil {
		result.ShowSources = config.Bool(*override.ShowSources)
	}

	// CLI-only booleans can only be switched on.
	if override.Recursive {
		result.Recursive = true
	}
	if override.Force {
		result.Force = true
	}

	if override.Exclude != nil {
		result.Exclude = append([]string(nil), override.Exclude...)
	}

	mergeInit(&result.Init, override.Init)

	return result
}

func mergeInit(result *config.InitConfig, override config.InitConfig) {
	if override.Strict != nil {
		result.Strict = config.Bool(*override.Strict)
	}
	if override.MaxFiles != 0 {
		result.MaxFiles = override.MaxFiles
	}
	if override.Backups.Enabled != nil {
		result.Backups.Enabled = config.Bool(*override.Backups.Enabled)
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
