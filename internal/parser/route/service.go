// Package route turns documentation path tables into OpenAPI operations.
// It builds query and path parameters from the Filters section, the response
// schema from the Fields section, and assigns summaries, tags and security.
package route

import (
	"github.com/griffnb/giantbomb-openapi/internal/domain"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
	"github.com/griffnb/giantbomb-openapi/internal/parser/field"
	"github.com/griffnb/giantbomb-openapi/internal/schema"
)

// ParameterSchemas reports which well-known parameter schemas exist, so query
// parameters can reference them.
type ParameterSchemas interface {
	Has(name string) bool
}

// Debugger interface for logging
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// Service builds one operation per documentation table.
type Service struct {
	parameters ParameterSchemas
	debug      Debugger
}

// NewService creates a new route service resolving shared parameter schemas
// through parameters.
func NewService(parameters ParameterSchemas) *Service {
	return &Service{
		parameters: parameters,
		debug:      noOpDebugger{},
	}
}

// SetDebugger sets the debugger for logging
func (s *Service) SetDebugger(debug Debugger) {
	if debug != nil {
		s.debug = debug
	}
}

// BuildOperation builds the GET operation of path from its table and returns
// it with the response field schema. The schema is not registered and the
// operation has no responses yet; see AttachResponses.
func (s *Service) BuildOperation(table domain.Table, path string) (*openapi.Operation, *openapi.Schema) {
	op := &openapi.Operation{
		OperationID: field.OperationID(path),
		Tags:        []string{Tag(path)},
		Security:    base.Security(),
	}
	op.Summary, op.Description = SplitDescription(table.Description)

	op.Parameters = append(op.Parameters, pathParameters(path)...)
	for _, row := range table.Filters {
		param := s.queryParameter(row, path)
		if param == nil {
			s.debug.Printf("Route: skipping unreadable filter row in %s", path)
			continue
		}
		op.Parameters = append(op.Parameters, param)
	}

	fields := schema.BuildSchema(table.Fields)

	if fieldList := op.Parameter(fieldListParameter); fieldList != nil {
		describeFieldList(fieldList, schema.PropertyNames(fields))
	}

	return op, correct(path, fields)
}
