// Package registry maintains the __init__.py aggregator files that list
// generated components.
package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/output"
)

// MarkerFile is the package marker written into every source directory. It
// doubles as the registry file of its directory.
const MarkerFile = "__init__.py"

// EnsureMarker writes an empty MarkerFile into dir unless one exists.
func EnsureMarker(dir string) error {
	path := filepath.Join(dir, MarkerFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return oerrors.NewIOError("checking package marker", path, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.NewIOError("creating directory", dir, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return oerrors.NewIOError("writing package marker", path, err)
	}
	return nil
}

// EnsurePackage makes rel (slash-separated, relative to root) and each of its
// ancestors below root a package, writing missing markers from the top down.
func EnsurePackage(root, rel string) error {
	dir := root
	for _, part := range strings.Split(rel, "/") {
		if part == "" || part == "." {
			continue
		}
		dir = filepath.Join(dir, part)
		if err := EnsureMarker(dir); err != nil {
			return err
		}
	}
	return nil
}

// AppendUnique appends line to the file at path unless the file already
// contains it. A missing file is treated as empty and created along with its
// parent directories. Returns true if the file was modified.
func AppendUnique(path, line string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, oerrors.NewIOError("reading registry", path, err)
	}

	if strings.Contains(string(content), line) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, oerrors.NewIOError("creating registry directory", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, oerrors.NewIOError("opening registry", path, err)
	}
	defer f.Close()

	var buf strings.Builder
	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		buf.WriteString("\n")
	}
	buf.WriteString(line)
	buf.WriteString("\n")

	if _, err := f.WriteString(buf.String()); err != nil {
		return false, oerrors.NewIOError("writing registry", path, err)
	}

	return true, nil
}

// Registry binds an aggregator file to the import line format of one
// component kind. Line is a text/template executed against the name data.
type Registry struct {
	// Path is the registry file relative to the project root.
	Path string

	// Line is the import line template, e.g. "from .{{.Lower}} import {{.TypeName}}".
	Line string
}

// Render returns the import line for data.
func (r Registry) Render(data any) (string, error) {
	tmpl, err := template.New(r.Path).Option("missingkey=error").Parse(r.Line)
	if err != nil {
		return "", fmt.Errorf("parsing registry line for %s: %w", r.Path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering registry line for %s: %w", r.Path, err)
	}
	return buf.String(), nil
}

// Conflicting returns a line of the registry under root that imports from
// module but differs from the line rendered for data, or "" when there is
// none. Two lines for one module mean one of them names a class the module
// no longer defines.
func (r Registry) Conflicting(root, module string, data any) (string, error) {
	line, err := r.Render(data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, r.Path)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", oerrors.NewIOError("reading registry", path, err)
	}

	prefix := "from ." + module + " import "
	for _, existing := range strings.Split(string(content), "\n") {
		existing = strings.TrimSpace(existing)
		if strings.HasPrefix(existing, prefix) && existing != line {
			return existing, nil
		}
	}
	return "", nil
}

// Register appends the rendered line to the registry under root and reports
// the outcome. name is only used for the notice.
func (r Registry) Register(root, name string, data any) (bool, error) {
	line, err := r.Render(data)
	if err != nil {
		return false, err
	}

	added, err := AppendUnique(filepath.Join(root, r.Path), line)
	if err != nil {
		return false, err
	}

	if added {
		output.Registered(name, r.Path)
		output.Debug("registered component", "name", name, "registry", r.Path)
	} else {
		output.AlreadyRegistered(name, r.Path)
	}
	return added, nil
}
