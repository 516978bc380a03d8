// Package generator writes individual components and full entity slices into
// an existing project.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/naming"
	"github.com/faspi/cli/internal/output"
	"github.com/faspi/cli/internal/registry"
	"github.com/faspi/cli/internal/templates"
)

// ErrUnknownKind is returned for component kinds the generator does not know.
var ErrUnknownKind = errors.New("unknown component kind")

// DefaultMethod is the HTTP method used when none is configured.
const DefaultMethod = "GET"

// ValidMethods lists the HTTP methods accepted for single routes.
var ValidMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// Result describes the files written for one component.
type Result struct {
	// Kind is the generated component kind.
	Kind templates.Kind

	// ImplPath is the implementation file relative to the project root.
	ImplPath string

	// TestPath is the test file relative to the project root.
	TestPath string

	// Registered is false when the registry already listed the component.
	Registered bool
}

// Option configures a single Generate call.
type Option func(*templates.Data)

// WithMethod binds an HTTP method to the generated route.
func WithMethod(method string) Option {
	return func(d *templates.Data) {
		*d = d.WithMethod(method)
	}
}

// Generator writes components under a project root.
type Generator struct {
	root string
}

// New returns a Generator rooted at root.
func New(root string) *Generator {
	return &Generator{root: root}
}

// Root returns the project root.
func (g *Generator) Root() string {
	return g.root
}

// Generate renders the implementation and test files for one component and
// registers it. Both directories and their ancestors become packages.
// Regeneration overwrites both files; registration is idempotent. A name that
// differs from an already registered one only in case is rejected. I/O
// failures abort immediately without cleanup.
func (g *Generator) Generate(kind templates.Kind, name string, opts ...Option) (*Result, error) {
	if err := naming.Validate(name); err != nil {
		return nil, err
	}

	place, ok := catalog[kind]
	if !ok {
		return nil, unknownKind(string(kind))
	}
	pair, err := templates.ComponentTemplates(kind)
	if err != nil {
		return nil, err
	}

	data := templates.NewData(name).WithLabel(place.Label)
	for _, opt := range opts {
		opt(&data)
	}

	module := place.module(data)
	result := &Result{
		Kind:     kind,
		ImplPath: place.Dir + "/" + module + ".py",
		TestPath: place.TestDir + "/test_" + module + ".py",
	}

	reg := place.registry()
	existing, err := reg.Conflicting(g.root, module, data)
	if err != nil {
		return nil, err
	}
	if existing != "" {
		return nil, &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  fmt.Sprintf("module %q is already registered as %q", module, existing),
			Location: reg.Path,
			Hint:     "reuse the casing of the existing name",
			Cause:    oerrors.ErrConfiguration,
		}
	}

	output.Debug("generating component", "kind", kind, "name", name, "path", result.ImplPath)

	for _, dir := range []string{place.Dir, place.TestDir} {
		if err := registry.EnsurePackage(g.root, dir); err != nil {
			return nil, err
		}
	}

	if err := g.render(pair.Impl, result.ImplPath, data); err != nil {
		return nil, err
	}

	registered, err := reg.Register(g.root, data.TypeName, data)
	if err != nil {
		return nil, err
	}
	result.Registered = registered

	if err := g.render(pair.Test, result.TestPath, data); err != nil {
		return nil, err
	}

	return result, nil
}

// Route generates a single endpoint bound to method. An empty method means
// DefaultMethod.
func (g *Generator) Route(name, method string) (*Result, error) {
	m, err := NormalizeMethod(method)
	if err != nil {
		return nil, err
	}
	return g.Generate(templates.KindRoute, name, WithMethod(m))
}

// Model generates a persistence model.
func (g *Generator) Model(name string) (*Result, error) {
	return g.Generate(templates.KindModel, name)
}

// UseCase generates a standalone use case bound to the example repository port.
func (g *Generator) UseCase(name string) (*Result, error) {
	return g.Generate(templates.KindUseCase, name)
}

// Generic generates a free-form component. tag must be "service" or "core".
func (g *Generator) Generic(tag, name string) (*Result, error) {
	switch templates.Kind(tag) {
	case templates.KindService, templates.KindCore:
		return g.Generate(templates.Kind(tag), name)
	default:
		return nil, unknownKind(tag)
	}
}

// NormalizeMethod uppercases method and checks it against ValidMethods.
func NormalizeMethod(method string) (string, error) {
	if method == "" {
		return DefaultMethod, nil
	}

	upper := strings.ToUpper(method)
	for _, m := range ValidMethods {
		if m == upper {
			return upper, nil
		}
	}
	return "", oerrors.NewConfigurationError(
		fmt.Sprintf("unsupported HTTP method %q", method),
		"use one of "+strings.Join(ValidMethods, ", "),
	)
}

func (g *Generator) render(tmpl, rel string, data templates.Data) error {
	content, err := templates.Render(tmpl, data)
	if err != nil {
		return err
	}
	return WriteFile(g.root, rel, content)
}

// WriteFile creates parent directories and writes content to root/rel,
// overwriting any existing file, then reports it.
func WriteFile(root, rel string, content []byte) error {
	path := filepath.Join(root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.NewIOError("creating directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return oerrors.NewIOError("writing file", path, err)
	}

	output.Created(rel)
	return nil
}

func unknownKind(kind string) error {
	return &oerrors.DetailError{
		Type:    "invalid configuration",
		Message: fmt.Sprintf("unknown component kind %q", kind),
		Hint:    "valid kinds: service, core",
		Cause:   fmt.Errorf("%w: %w", ErrUnknownKind, oerrors.ErrConfiguration),
	}
}
