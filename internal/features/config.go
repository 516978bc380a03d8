// Package features describes the optional capabilities a new project can be
// scaffolded with and installs their files.
package features

import (
	"fmt"
	"strings"
)

// Flag identifies an optional feature. Declaration order is output order.
type Flag int

const (
	SQL Flag = iota
	Auth
	CORS
	Cache
	Tasks
	Supabase
)

const flagCount = int(Supabase) + 1

// All lists every flag in declaration order.
var All = []Flag{SQL, Auth, CORS, Cache, Tasks, Supabase}

var flagNames = map[Flag]string{
	SQL:      "sql",
	Auth:     "auth",
	CORS:     "cors",
	Cache:    "cache",
	Tasks:    "tasks",
	Supabase: "supabase",
}

var flagDescriptions = map[Flag]string{
	SQL:      "SQLAlchemy ORM support",
	Auth:     "JWT authentication",
	CORS:     "CORS middleware",
	Cache:    "Redis and FastAPI-Cache support",
	Tasks:    "Celery task queue and Flower monitoring",
	Supabase: "Supabase integration",
}

// String returns the command-line name of the flag.
func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// Description returns the human-readable capability name.
func (f Flag) Description() string {
	return flagDescriptions[f]
}

// ParseFlag resolves a command-line name.
func ParseFlag(name string) (Flag, error) {
	for _, f := range All {
		if flagNames[f] == strings.ToLower(name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown feature %q", name)
}

// Config is an immutable set of enabled features.
type Config struct {
	enabled [flagCount]bool
}

// NewConfig returns a Config with the given flags enabled.
func NewConfig(flags ...Flag) Config {
	var c Config
	for _, f := range flags {
		c = c.With(f, true)
	}
	return c
}

// Enabled reports whether flag is on.
func (c Config) Enabled(flag Flag) bool {
	if int(flag) < 0 || int(flag) >= len(c.enabled) {
		return false
	}
	return c.enabled[flag]
}

// With returns a copy of c with flag set to on.
func (c Config) With(flag Flag, on bool) Config {
	if int(flag) >= 0 && int(flag) < flagCount {
		c.enabled[flag] = on
	}
	return c
}

// EnabledFlags returns the enabled flags in declaration order.
func (c Config) EnabledFlags() []Flag {
	var flags []Flag
	for _, f := range All {
		if c.enabled[f] {
			flags = append(flags, f)
		}
	}
	return flags
}

// Names returns the enabled flag names in declaration order.
func (c Config) Names() []string {
	flags := c.EnabledFlags()
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}
	return names
}
