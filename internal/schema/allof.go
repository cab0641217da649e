package schema

import (
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

// ComposeAllOf combines a base schema with an inline extension object.
//
// Examples:
//   - ref + extension → allOf[ref, extension]
//   - nil base → extension unchanged
//   - nil extension → allOf[ref, {type: object}] so the composition stays explicit
func ComposeAllOf(base *openapi.SchemaOrRef, extension *openapi.Schema) *openapi.Schema {
	if base == nil {
		if extension == nil {
			return openapi.Object()
		}
		return extension
	}

	if extension == nil {
		extension = openapi.Object()
	}

	return openapi.AllOf(base, openapi.Inline(extension))
}

// Extend builds an object holding a single property, the usual second branch
// of an allOf.
func Extend(name string, value *openapi.SchemaOrRef) *openapi.Schema {
	extension := openapi.Object()
	extension.SetProperty(name, value)
	return extension
}
