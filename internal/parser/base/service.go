package base

import (
	"github.com/griffnb/giantbomb-openapi/internal/domain"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

// Debugger interface for logging
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// Service fills the parts of the document that do not depend on individual
// path tables: info, servers, tags, the security scheme and shared components.
type Service struct {
	doc              *openapi.Document
	documentationURL string
	debug            Debugger
}

// NewService creates a new base service writing into doc.
func NewService(doc *openapi.Document) *Service {
	return &Service{
		doc:              doc,
		documentationURL: DocumentationURL,
		debug:            noOpDebugger{},
	}
}

// SetDebugger sets the debugger for logging
func (s *Service) SetDebugger(debug Debugger) {
	if debug != nil {
		s.debug = debug
	}
}

// SetDocumentationURL overrides the externalDocs link.
func (s *Service) SetDocumentationURL(url string) {
	if url != "" {
		s.documentationURL = url
	}
}

// Build writes the static document parts and the shared Response envelope
// built from the response table.
func (s *Service) Build(response domain.Table) {
	s.setInfo()
	s.setServers()
	s.setTags()
	s.setSecurity()

	s.doc.Components.Schemas[ResponseSchema] = EnvelopeSchema(response.Fields)
	s.debug.Printf("Base: envelope has %d properties", s.doc.Components.Schemas[ResponseSchema].Properties.Len())

	for name, parameterSchema := range ParameterSchemas() {
		s.doc.Components.Schemas[name] = parameterSchema
	}

	s.doc.Components.Responses[InvalidAPIKeyResponse] = invalidAPIKey()
}
