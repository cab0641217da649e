package route

import (
	"github.com/griffnb/giantbomb-openapi/internal/domain"
	"github.com/griffnb/giantbomb-openapi/internal/loader"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
	"github.com/griffnb/giantbomb-openapi/internal/parser/field"
	"github.com/griffnb/giantbomb-openapi/internal/schema"
)

const (
	fieldListParameter = "field_list"
	limitParameter     = "limit"
	resourcesParameter = "resources"

	guidParameter = "guid"
	idParameter   = "id"

	searchPath     = "/search"
	searchMaxLimit = 10
)

// aliasSchemas maps filter names whose schema name differs from their
// PascalCase form.
var aliasSchemas = map[string]string{
	"platforms": base.PlatformSchema,
	"game":      base.GameSchema,
}

// reservedSchemas are free text filters whose values carry reserved characters.
var reservedSchemas = map[string]string{
	"sort":   base.SortSchema,
	"filter": base.FilterSchema,
}

// pathParameters returns one required path parameter per {placeholder}, left to right.
func pathParameters(path string) []*openapi.Parameter {
	names := loader.PathParameters(path)
	params := make([]*openapi.Parameter, 0, len(names))

	for _, name := range names {
		param := &openapi.Parameter{
			Name:     name,
			In:       openapi.InPath,
			Required: true,
		}
		switch name {
		case guidParameter:
			param.Schema = openapi.SchemaRef(base.GuidSchema)
		case idParameter:
			param.Schema = openapi.Inline(&openapi.Schema{Type: openapi.TypeInteger})
		default:
			param.Schema = openapi.Inline(&openapi.Schema{Type: openapi.TypeString})
		}
		params = append(params, param)
	}

	return params
}

// queryParameter builds a query parameter from a filter row, or nil when the
// row has no readable name.
func (s *Service) queryParameter(row domain.Row, path string) *openapi.Parameter {
	name, ok := row.Name()
	if !ok {
		return nil
	}
	description, _ := row.Description()

	param := &openapi.Parameter{
		Name:        name,
		In:          openapi.InQuery,
		Description: description,
	}

	switch {
	case name == resourcesParameter:
		param.Style = openapi.StyleForm
		param.Explode = openapi.Bool(false)
		param.Schema = openapi.Inline(openapi.Array(openapi.SchemaRef(base.ResourceTypeSchema)))
	case reservedSchemas[name] != "":
		param.AllowReserved = openapi.Bool(true)
		param.Schema = openapi.SchemaRef(reservedSchemas[name])
	case aliasSchemas[name] != "":
		param.Schema = openapi.SchemaRef(aliasSchemas[name])
	case name == limitParameter && path == searchPath:
		param.Schema = openapi.Inline(schema.ComposeAllOf(
			openapi.SchemaRef(base.LimitSchema),
			&openapi.Schema{Maximum: openapi.Int(searchMaxLimit)},
		))
	default:
		if shared := field.ToPascalCase(name); s.parameters != nil && s.parameters.Has(shared) {
			param.Schema = openapi.SchemaRef(shared)
		} else {
			param.Schema = openapi.Inline(&openapi.Schema{Type: openapi.TypeString})
		}
	}

	return param
}

// describeFieldList narrows field_list to the names the path actually returns.
func describeFieldList(param *openapi.Parameter, names []string) {
	param.Style = openapi.StyleForm
	param.Explode = openapi.Bool(false)
	param.Schema = openapi.Inline(&openapi.Schema{
		Type: openapi.TypeArray,
		Items: openapi.Inline(&openapi.Schema{
			Type: openapi.TypeString,
			Enum: openapi.StringEnum(names...),
		}),
		AllOf: []*openapi.SchemaOrRef{openapi.SchemaRef(base.FieldListSchema)},
	})
}

// FieldListNames returns the enumerated field names of an operation's
// field_list parameter.
func FieldListNames(op *openapi.Operation) ([]string, bool) {
	items := fieldListItems(op)
	if items == nil {
		return nil, false
	}
	return items.Enum.Strings(), true
}

// SetFieldListNames replaces the enumerated field names of an operation's
// field_list parameter. It does nothing when the parameter was not built.
func SetFieldListNames(op *openapi.Operation, names []string) bool {
	items := fieldListItems(op)
	if items == nil {
		return false
	}
	items.Enum = openapi.StringEnum(names...)
	return true
}

func fieldListItems(op *openapi.Operation) *openapi.Schema {
	param := op.Parameter(fieldListParameter)
	if param == nil {
		return nil
	}
	fieldSchema := param.Schema.Value()
	if fieldSchema == nil {
		return nil
	}
	items := fieldSchema.Items.Value()
	if items == nil || items.Enum == nil {
		return nil
	}
	return items
}
