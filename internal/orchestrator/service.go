// Package orchestrator coordinates all services to generate the OpenAPI document.
// Building runs in two phases: every path table is collected first, then the
// passes that need the full set of registered schemas run.
package orchestrator

import (
	"fmt"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
	"github.com/griffnb/giantbomb-openapi/internal/loader"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
	"github.com/griffnb/giantbomb-openapi/internal/parser/route"
	"github.com/griffnb/giantbomb-openapi/internal/registry"
)

// Config holds orchestrator configuration options.
type Config struct {
	// BasePath is stripped from table URLs to form path keys
	BasePath string

	// DocumentationURL is linked from the document's externalDocs
	DocumentationURL string

	// SingularPaths overrides the singular to collection path table
	SingularPaths map[string]string

	Debug Debugger
}

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// Service coordinates the builders for one document.
type Service struct {
	config *Config
	debug  Debugger
}

// build is the state of a single Build call.
type build struct {
	doc         *openapi.Document
	registry    *registry.Service
	routeParser *route.Service
	debug       Debugger
}

// New creates a new orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	if config.BasePath == "" {
		config.BasePath = base.BasePath
	}

	var debug Debugger = noOpDebugger{}
	if config.Debug != nil {
		debug = config.Debug
	}

	return &Service{config: config, debug: debug}
}

// Build turns a parsed documentation page into an OpenAPI document.
func (s *Service) Build(page *domain.Page) (*openapi.Document, error) {
	if page == nil {
		return nil, fmt.Errorf("no documentation page")
	}

	b := s.newBuild()

	baseParser := base.NewService(b.doc)
	baseParser.SetDebugger(s.debug)
	baseParser.SetDocumentationURL(s.config.DocumentationURL)
	baseParser.Build(page.Response)

	if err := b.collect(page.Paths, s.config.BasePath); err != nil {
		return nil, err
	}

	b.mergeDetails()
	b.unionSearchFields()

	s.debug.Printf("Orchestrator: built %d paths and %d schemas", len(b.doc.Paths), len(b.doc.Components.Schemas))

	return b.doc, nil
}

func (s *Service) newBuild() *build {
	doc := openapi.NewDocument(openapi.Info{})

	var opts []registry.Option
	opts = append(opts, registry.WithDebugger(s.debug))
	if s.config.SingularPaths != nil {
		opts = append(opts, registry.WithSingularPaths(s.config.SingularPaths))
	}
	registryService := registry.NewService(&doc.Components, opts...)

	routeParser := route.NewService(base.WellKnownParameters())
	routeParser.SetDebugger(s.debug)

	return &build{
		doc:         doc,
		registry:    registryService,
		routeParser: routeParser,
		debug:       s.debug,
	}
}

// collect builds and registers one operation per path table.
func (b *build) collect(tables []domain.Table, basePath string) error {
	for i, table := range tables {
		path, err := loader.PathFromURL(table.URL, basePath)
		if err != nil {
			return fmt.Errorf("table %d: %w", i+2, err)
		}

		op, fields := b.routeParser.BuildOperation(table, path)
		name := b.registry.Register(path, fields)
		route.AttachResponses(op, b.registry.Envelope(name, path))

		if _, exists := b.doc.Paths[path]; exists {
			b.debug.Printf("Orchestrator: %s documented twice, keeping the later table", path)
		}
		b.doc.Paths[path] = &openapi.PathItem{Get: op}
	}

	return nil
}
