package route

import (
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
)

// Properties the bespoke video endpoints return but do not document.
const (
	successProperty    = "success"
	messageProperty    = "message"
	savedTimesProperty = "savedTimes"
)

// correction rewrites the field schema of one path.
type correction func(fields *openapi.Schema) *openapi.Schema

// corrections are keyed by literal path. The documentation is inconsistent for
// these endpoints.
var corrections = map[string]correction{
	"/video/current-live":     withSuccess,
	"/video/get-saved-time":   withoutMessage,
	"/video/saved-times":      savedTimes,
	"/video/save-time":        successMessage,
	"/video/clear-saved-time": successMessage,
	searchPath:                searchResults,
}

func correct(path string, fields *openapi.Schema) *openapi.Schema {
	if fix, ok := corrections[path]; ok {
		return fix(fields)
	}
	return fields
}

func success() *openapi.SchemaOrRef {
	return openapi.Inline(openapi.Integer("1 when the request succeeded."))
}

func withSuccess(fields *openapi.Schema) *openapi.Schema {
	fields.SetProperty(successProperty, success())
	return fields
}

func withoutMessage(fields *openapi.Schema) *openapi.Schema {
	fields.Properties.Delete(messageProperty)
	return withSuccess(fields)
}

func savedTimes(fields *openapi.Schema) *openapi.Schema {
	wrapper := openapi.Object()
	wrapper.SetProperty(savedTimesProperty, openapi.Inline(openapi.Array(openapi.Inline(fields))))
	wrapper.SetProperty(successProperty, success())
	return wrapper
}

func successMessage(*openapi.Schema) *openapi.Schema {
	result := openapi.Object()
	result.SetProperty(successProperty, success())
	result.SetProperty(messageProperty, openapi.Inline(openapi.String("Outcome of the request.")))
	return result
}

// searchResults lets a search result be any searchable resource, or the
// generic fields the search table documents.
func searchResults(fields *openapi.Schema) *openapi.Schema {
	options := make([]*openapi.SchemaOrRef, 0, len(base.SearchableResources)+1)
	for _, resource := range base.SearchableResources {
		options = append(options, openapi.SchemaRef(resource))
	}
	options = append(options, openapi.Inline(fields))
	return openapi.OneOf(options...)
}
