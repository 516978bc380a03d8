// Package templates provides the embedded catalog of FastAPI source
// templates and their rendering.
package templates

import (
	"strings"

	"github.com/faspi/cli/internal/naming"
)

// Kind identifies a component kind.
type Kind string

const (
	KindEntity              Kind = "entity"
	KindRepositoryInterface Kind = "repository-interface"
	KindUseCaseSet          Kind = "use-case-set"
	KindRepositoryImpl      Kind = "repository"
	KindModel               Kind = "model"
	KindSchema              Kind = "schema"
	KindCRUDRoute           Kind = "crud-route"
	KindRoute               Kind = "route"
	KindService             Kind = "service"
	KindCore                Kind = "core"
	KindUseCase             Kind = "usecase"
)

// Data holds the placeholders available to every template.
type Data struct {
	// Name is the name as given by the user.
	Name string

	// TypeName is the capitalized class form (e.g., "Widget").
	TypeName string

	// Lower is the module and file form (e.g., "widget").
	Lower string

	// Snake is the snake_case form used for function names.
	Snake string

	// Plural is Lower with an "s" suffix, used for URL prefixes and tables.
	Plural string

	// Method is the uppercase HTTP verb for single routes.
	Method string

	// MethodLower is the lowercase verb used by FastAPI decorators.
	MethodLower string

	// Label is the human-readable kind label (e.g., "Service").
	Label string

	// Project is the project directory name.
	Project string

	// ProjectTitle is the README heading form of Project.
	ProjectTitle string
}

// NewData derives every name form from name.
func NewData(name string) Data {
	lower := naming.ToLower(name)
	return Data{
		Name:     name,
		TypeName: naming.Capitalize(name),
		Lower:    lower,
		Snake:    naming.ToSnake(name),
		Plural:   naming.Plural(lower),
	}
}

// WithMethod returns a copy of d bound to an HTTP method.
func (d Data) WithMethod(method string) Data {
	d.Method = strings.ToUpper(method)
	d.MethodLower = strings.ToLower(method)
	return d
}

// WithLabel returns a copy of d with a kind label.
func (d Data) WithLabel(label string) Data {
	d.Label = label
	return d
}

// WithProject returns a copy of d bound to a project name.
func (d Data) WithProject(project string) Data {
	d.Project = project
	d.ProjectTitle = naming.Title(project)
	return d
}

// Pair names the implementation and test templates of a component kind.
type Pair struct {
	Impl string
	Test string
}
