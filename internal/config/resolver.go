package config

import (
	"os"

	"github.com/faspi/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one resolved configuration value.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) FASPI_CONFIG env, (3) ~/.faspi/config.yaml default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("FASPI_CONFIG")

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveUpdateCheck decides whether the release check runs. The
// --no-update-check flag wins over configuration, and development builds
// never check.
func ResolveUpdateCheck(noUpdateCheckFlag bool, cfg *Config, devBuild bool) ResolvedValue {
	result := ResolvedValue{Key: "update_check", Shadowed: make(map[ConfigSource]string)}

	switch {
	case noUpdateCheckFlag:
		result.Value = false
		result.Source = SourceFlag
	case devBuild:
		result.Value = false
		result.Source = SourceDefault
	default:
		result.Value = cfg.UpdateCheck
		result.Source = SourceConfig
	}
	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
