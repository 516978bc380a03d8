package scaffold

import (
	"os"
	"path/filepath"
	"sort"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/registry"
)

// LayoutDirs is every directory of the layered project layout, relative to
// the project root.
var LayoutDirs = []string{
	"app/config",
	"app/core/entities",
	"app/core/value_objects",
	"app/core/interfaces",
	"app/core/modules",
	"app/application/use_cases",
	"app/application/services",
	"app/infrastructure/database/models",
	"app/infrastructure/repositories",
	"app/infrastructure/external_apis",
	"app/infrastructure/utils",
	"app/interfaces/api/v1/endpoints",
	"app/interfaces/api/v1/schemas",
	"app/interfaces/api/v1/dependencies",
	"tests/core",
	"tests/application",
	"tests/infrastructure",
	"tests/interfaces",
}

// MarkedTrees are the roots whose directories all receive a package marker.
var MarkedTrees = []string{"app", "tests"}

// WalkDirs calls fn for root and then for every directory beneath it,
// depth first in lexical order. fn errors stop the walk.
func WalkDirs(root string, fn func(dir string) error) error {
	if err := fn(root); err != nil {
		return err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return oerrors.NewIOError("reading directory", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	for _, d := range dirs {
		if err := WalkDirs(filepath.Join(root, d), fn); err != nil {
			return err
		}
	}
	return nil
}

// createLayout makes every layout directory under root.
func createLayout(root string) error {
	for _, dir := range LayoutDirs {
		path := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return oerrors.NewIOError("creating directory", path, err)
		}
	}
	return nil
}

// writeMarkers fills every directory of the marked trees with a package marker.
func writeMarkers(root string) error {
	for _, tree := range MarkedTrees {
		if err := WalkDirs(filepath.Join(root, tree), registry.EnsureMarker); err != nil {
			return err
		}
	}
	return nil
}
