package generator

import (
	"github.com/faspi/cli/internal/registry"
	"github.com/faspi/cli/internal/templates"
)

// placement describes where a component kind lives in the layered layout.
type placement struct {
	// Dir is the implementation directory relative to the project root.
	Dir string

	// TestDir is the test directory relative to the project root.
	TestDir string

	// Suffix is appended to the lowercased name to form the module name.
	Suffix string

	// Label is the human-readable kind name.
	Label string

	// Line is the registry import line template.
	Line string
}

var catalog = map[templates.Kind]placement{
	templates.KindEntity: {
		Dir:     "app/core/entities",
		TestDir: "tests/core/entities",
		Label:   "Entity",
		Line:    "from .{{.Lower}} import {{.TypeName}}",
	},
	templates.KindRepositoryInterface: {
		Dir:     "app/core/interfaces",
		TestDir: "tests/core/interfaces",
		Suffix:  "_repository",
		Label:   "Repository interface",
		Line:    "from .{{.Lower}}_repository import {{.TypeName}}Repository",
	},
	templates.KindUseCaseSet: {
		Dir:     "app/application/use_cases",
		TestDir: "tests/application/use_cases",
		Suffix:  "_use_case",
		Label:   "Use cases",
		Line: "from .{{.Lower}}_use_case import Get{{.TypeName}}UseCase, GetAll{{.TypeName}}UseCase, " +
			"Create{{.TypeName}}UseCase, Update{{.TypeName}}UseCase, Delete{{.TypeName}}UseCase",
	},
	templates.KindRepositoryImpl: {
		Dir:     "app/infrastructure/repositories",
		TestDir: "tests/infrastructure/repositories",
		Suffix:  "_repository",
		Label:   "Repository",
		Line:    "from .{{.Lower}}_repository import {{.TypeName}}Repository",
	},
	templates.KindModel: {
		Dir:     "app/infrastructure/database/models",
		TestDir: "tests/infrastructure/database/models",
		Label:   "Model",
		Line:    "from .{{.Lower}} import {{.TypeName}}Model",
	},
	templates.KindSchema: {
		Dir:     "app/interfaces/api/v1/schemas",
		TestDir: "tests/interfaces/api/v1/schemas",
		Label:   "Schema",
		Line:    "from .{{.Lower}} import {{.TypeName}}Create, {{.TypeName}}Update, {{.TypeName}}Response",
	},
	templates.KindCRUDRoute: {
		Dir:     EndpointsDir,
		TestDir: "tests/interfaces/api/v1/endpoints",
		Label:   "Routes",
		Line:    RouterLine,
	},
	templates.KindRoute: {
		Dir:     EndpointsDir,
		TestDir: "tests/interfaces/api/v1/endpoints",
		Label:   "Route",
		Line:    RouterLine,
	},
	templates.KindService: {
		Dir:     "app/application/services",
		TestDir: "tests/application/services",
		Label:   "Service",
		Line:    "from .{{.Lower}} import {{.TypeName}}Service",
	},
	templates.KindCore: {
		Dir:     "app/core/modules",
		TestDir: "tests/core/modules",
		Label:   "Core module",
		Line:    "from .{{.Lower}} import {{.TypeName}}",
	},
	templates.KindUseCase: {
		Dir:     "app/application/use_cases",
		TestDir: "tests/application/use_cases",
		Label:   "Use case",
		Line:    "from .{{.Lower}} import {{.TypeName}}UseCase",
	},
}

const (
	// EndpointsDir holds the API routers. Its __init__.py is the route registry
	// read by the generated app/main.py.
	EndpointsDir = "app/interfaces/api/v1/endpoints"

	// RouterLine is the registry line for every router module.
	RouterLine = "from .{{.Lower}} import router as {{.Lower}}_router"
)

// EndpointRegistry returns the registry shared by all routers.
func EndpointRegistry() registry.Registry {
	return registry.Registry{Path: EndpointsDir + "/__init__.py", Line: RouterLine}
}

func (p placement) registry() registry.Registry {
	return registry.Registry{Path: p.Dir + "/__init__.py", Line: p.Line}
}

func (p placement) module(d templates.Data) string {
	return d.Lower + p.Suffix
}

// entitySequence is the order in which a vertical slice is generated.
var entitySequence = []templates.Kind{
	templates.KindEntity,
	templates.KindRepositoryInterface,
	templates.KindUseCaseSet,
	templates.KindRepositoryImpl,
	templates.KindModel,
	templates.KindSchema,
	templates.KindCRUDRoute,
}
