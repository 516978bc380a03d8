package features

import (
	"fmt"
	"strings"

	"github.com/faspi/cli/internal/generator"
	"github.com/faspi/cli/internal/output"
	"github.com/faspi/cli/internal/templates"
)

// EnvHeader opens every generated .env.example.
const EnvHeader = "# Environment variables\n"

// Plan accumulates the contributions of the enabled features. Shared project
// files are composed from it once, after every feature has been installed.
type Plan struct {
	// Contributions are in declaration order.
	Contributions []Contribution

	// Files are the paths written by the installer.
	Files []string
}

// EntryPoint holds the app/main.py fragments.
type EntryPoint struct {
	Imports []string
	Setup   []string
	Startup []string
}

// Install renders and writes the files of every enabled feature under root in
// declaration order and registers feature routers. It never writes
// .env.example or app/main.py; those are composed from the returned Plan.
func Install(root string, cfg Config) (*Plan, error) {
	plan := &Plan{}

	for _, flag := range cfg.EnabledFlags() {
		c, ok := contributions[flag]
		if !ok {
			return nil, fmt.Errorf("no contribution for feature %s", flag)
		}

		output.Debug("installing feature", "feature", flag)

		for _, f := range c.Files {
			content, err := templates.Render(f.Template, templates.Data{})
			if err != nil {
				return nil, err
			}
			if err := generator.WriteFile(root, f.Path, content); err != nil {
				return nil, err
			}
			plan.Files = append(plan.Files, f.Path)
		}

		for _, router := range c.Routers {
			if _, err := generator.EndpointRegistry().Register(root, router, templates.NewData(router)); err != nil {
				return nil, err
			}
		}

		plan.Contributions = append(plan.Contributions, c)
	}

	return plan, nil
}

// Requirements returns the feature dependency lines in declaration order.
func (p *Plan) Requirements() []string {
	var reqs []string
	for _, c := range p.Contributions {
		reqs = append(reqs, c.Requirements...)
	}
	return reqs
}

// EnvTemplate composes .env.example: the header followed by each feature's
// section. A variable already emitted by an earlier section is skipped, and a
// section left empty by that is dropped.
func (p *Plan) EnvTemplate() string {
	var sb strings.Builder
	sb.WriteString(EnvHeader)

	seen := make(map[string]bool)
	for _, c := range p.Contributions {
		var vars []EnvVar
		for _, v := range c.Env.Vars {
			if seen[v.Key] {
				continue
			}
			seen[v.Key] = true
			vars = append(vars, v)
		}
		if len(vars) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "\n# %s\n", c.Env.Title)
		for _, v := range vars {
			fmt.Fprintf(&sb, "%s=%s\n", v.Key, v.Value)
		}
	}

	return sb.String()
}

// EntryPoint returns the merged app/main.py fragments.
func (p *Plan) EntryPoint() EntryPoint {
	var ep EntryPoint
	for _, c := range p.Contributions {
		ep.Imports = append(ep.Imports, c.Imports...)
		ep.Setup = append(ep.Setup, c.Setup...)
		ep.Startup = append(ep.Startup, c.Startup...)
	}
	return ep
}
