package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"text/template"
)

//go:embed files
var templateFS embed.FS

const (
	rootDir = "files"
	ext     = ".tmpl"
)

// componentTemplates is the fixed mapping from component kind to its
// implementation and test templates.
var componentTemplates = map[Kind]Pair{
	KindEntity:              {Impl: "components/entity.py", Test: "tests/entity.py"},
	KindRepositoryInterface: {Impl: "components/repository_interface.py", Test: "tests/repository_interface.py"},
	KindUseCaseSet:          {Impl: "components/use_case_set.py", Test: "tests/use_case_set.py"},
	KindRepositoryImpl:      {Impl: "components/repository.py", Test: "tests/repository.py"},
	KindModel:               {Impl: "components/model.py", Test: "tests/model.py"},
	KindSchema:              {Impl: "components/schema.py", Test: "tests/schema.py"},
	KindCRUDRoute:           {Impl: "components/crud_route.py", Test: "tests/crud_route.py"},
	KindRoute:               {Impl: "components/route.py", Test: "tests/route.py"},
	KindService:             {Impl: "components/service.py", Test: "tests/service.py"},
	KindCore:                {Impl: "components/core.py", Test: "tests/core.py"},
	KindUseCase:             {Impl: "components/usecase.py", Test: "tests/usecase.py"},
}

// ComponentTemplates returns the template pair for kind.
func ComponentTemplates(kind Kind) (Pair, error) {
	p, ok := componentTemplates[kind]
	if !ok {
		return Pair{}, fmt.Errorf("no templates for component kind %q", kind)
	}
	return p, nil
}

// Render executes the named template against data.
// name is the template path without the .tmpl suffix (e.g., "components/entity.py").
func Render(name string, data any) ([]byte, error) {
	content, err := fs.ReadFile(templateFS, rootDir+"/"+name+ext)
	if err != nil {
		return nil, fmt.Errorf("unknown template %q: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// List returns the names of every embedded template under prefix, sorted.
// An empty prefix lists the whole catalog.
func List(prefix string) ([]string, error) {
	var names []string

	err := fs.WalkDir(templateFS, rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ext) {
			return nil
		}

		name := strings.TrimSuffix(strings.TrimPrefix(path, rootDir+"/"), ext)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// Names returns the whole catalog.
func Names() []string {
	names, err := List("")
	if err != nil {
		// The catalog is embedded at build time.
		panic(err)
	}
	return names
}
