// Package registry names response schemas, registers them as components and
// decides the envelope each operation's body is wrapped in.
package registry

import (
	"sort"

	"github.com/griffnb/giantbomb-openapi/internal/loader"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
	"github.com/griffnb/giantbomb-openapi/internal/parser/field"
	"github.com/griffnb/giantbomb-openapi/internal/schema"
)

// DetailSuffix names the schemas of collection paths, which only hold the
// fields the singular resource lacks.
const DetailSuffix = ".Detail"

// Detail is a collection schema waiting for the detail merge.
type Detail struct {
	// Name is the component name, e.g. "Game.Detail"
	Name string
	// Resource is the singular component the detail extends, e.g. "Game"
	Resource string
	// Path is the collection path the schema was built from
	Path string
	// Schema is the unmerged field schema of the collection table
	Schema *openapi.Schema
}

// Service registers schemas into the document's components.
type Service struct {
	schemas  map[string]*openapi.Schema
	singular map[string]string
	plural   map[string]string
	excluded map[string]bool
	deferred map[string]*Detail
	debug    Debugger
}

// NewService creates a registry writing into components.
func NewService(components *openapi.Components, opts ...Option) *Service {
	if components.Schemas == nil {
		components.Schemas = make(map[string]*openapi.Schema)
	}

	s := &Service{
		schemas:  components.Schemas,
		singular: SingularPaths,
		excluded: ExcludedPaths,
		deferred: make(map[string]*Detail),
		debug:    noOpDebugger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.plural = make(map[string]string, len(s.singular))
	for singularPath, pluralPath := range s.singular {
		s.plural[pluralPath] = singularPath
	}

	return s
}

// Has reports whether a component schema is registered under name.
func (s *Service) Has(name string) bool {
	_, ok := s.schemas[name]
	return ok
}

// Schema returns the component registered under name, or nil.
func (s *Service) Schema(name string) *openapi.Schema {
	return s.schemas[name]
}

// Add registers a schema under name, replacing any previous one.
func (s *Service) Add(name string, value *openapi.Schema) {
	if _, exists := s.schemas[name]; exists {
		s.debug.Printf("Registry: replacing schema %s", name)
	}
	s.schemas[name] = value
}

// Register names the field schema of path and registers it.
//
// Classification, in order:
//   - singular path ("/game/{guid}"): registered under the resource name
//   - collection path of a singular one ("/games"): named "<Resource>.Detail"
//     and deferred to the detail merge
//   - anything else: named from the last literal segment, singularized
func (s *Service) Register(path string, value *openapi.Schema) string {
	if _, ok := s.singular[path]; ok {
		name := field.ResourceName(path)
		s.Add(name, value)
		return name
	}

	if singularPath, ok := s.plural[path]; ok {
		resource := field.ResourceName(singularPath)
		name := resource + DetailSuffix
		s.deferred[name] = &Detail{Name: name, Resource: resource, Path: path, Schema: value}
		s.debug.Printf("Registry: deferring %s until %s is known", name, resource)
		return name
	}

	name := field.ResourceName(path)
	s.Add(name, value)
	return name
}

// Deferred returns the collection schemas awaiting the detail merge, sorted by name.
func (s *Service) Deferred() []*Detail {
	details := make([]*Detail, 0, len(s.deferred))
	for _, detail := range s.deferred {
		details = append(details, detail)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Name < details[j].Name
	})
	return details
}

// Envelope returns the response body of path for the schema registered as name.
//
// Excluded paths get the bare reference. Everything else is wrapped as
// allOf[Response, {results}], where results is the reference itself for
// singular paths and an array of it for collections. Paths outside the
// singular table count as singular when they hold a {placeholder}.
func (s *Service) Envelope(name, path string) *openapi.SchemaOrRef {
	if s.excluded[path] {
		return openapi.SchemaRef(name)
	}

	results := openapi.SchemaRef(name)
	if !s.isSingle(path) {
		results = openapi.Inline(openapi.Array(results))
	}

	return openapi.Inline(schema.ComposeAllOf(
		openapi.SchemaRef(base.ResponseSchema),
		schema.Extend(base.ResultsProperty, results),
	))
}

func (s *Service) isSingle(path string) bool {
	if _, ok := s.singular[path]; ok {
		return true
	}
	if _, ok := s.plural[path]; ok {
		return false
	}
	return len(loader.PathParameters(path)) > 0
}
