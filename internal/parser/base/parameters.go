package base

import (
	"strings"

	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/schema"
)

// Shared parameter schema names.
const (
	FieldListSchema = "FieldList"
	LimitSchema     = "Limit"
	GuidSchema      = "Guid"
	PlatformSchema  = "PlatformId"
	GameSchema      = "GameId"
	SortSchema      = "Sort"
	FilterSchema    = "Filter"
)

const (
	// ResourceTypeSchema is the shared enum of searchable resource names.
	ResourceTypeSchema = schema.ResourceTypeSchema

	sortPattern   = `^[a-z_]+:(asc|desc)$`
	filterPattern = `^[a-z_]+:[^,]+(,[a-z_]+:[^,]+)*$`
	guidPattern   = `^\d+-\d+$`
)

// SearchableResources are the component schemas search results can hold.
var SearchableResources = []string{
	"Game",
	"Franchise",
	"Character",
	"Concept",
	"Object",
	"Location",
	"Person",
	"Company",
	"Video",
}

// ParameterNames is a set of well-known parameter schema names.
type ParameterNames map[string]bool

// Has reports whether name is a well-known parameter schema.
func (n ParameterNames) Has(name string) bool {
	return n[name]
}

// WellKnownParameters returns the names of ParameterSchemas.
func WellKnownParameters() ParameterNames {
	names := make(ParameterNames)
	for name := range ParameterSchemas() {
		names[name] = true
	}
	return names
}

// ParameterSchemas returns the well-known parameter schemas, keyed by the
// PascalCase name query parameters are matched against.
func ParameterSchemas() map[string]*openapi.Schema {
	resourceTypes := make([]string, 0, len(SearchableResources))
	for _, resource := range SearchableResources {
		resourceTypes = append(resourceTypes, strings.ToLower(resource))
	}

	return map[string]*openapi.Schema{
		FieldListSchema: {
			Type:        openapi.TypeArray,
			Description: "Field names to include in the response.",
			Items:       openapi.Inline(&openapi.Schema{Type: openapi.TypeString}),
		},
		LimitSchema: {
			Type:        openapi.TypeInteger,
			Description: "Number of results per page.",
			Minimum:     openapi.Int(1),
			Maximum:     openapi.Int(100),
		},
		"Offset": {
			Type:        openapi.TypeInteger,
			Description: "Index of the first result.",
			Minimum:     openapi.Int(0),
		},
		"Page": {
			Type:        openapi.TypeInteger,
			Description: "Page of results, starting at 1.",
			Minimum:     openapi.Int(1),
		},
		"Format": {
			Type:        openapi.TypeString,
			Description: "Response format.",
			Enum:        openapi.StringEnum("xml", "json", "jsonp"),
		},
		"JsonCallback": {
			Type:        openapi.TypeString,
			Description: "Callback name wrapping a jsonp response.",
		},
		"Query": {
			Type:        openapi.TypeString,
			Description: "Search terms.",
		},
		SortSchema: {
			Type:        openapi.TypeString,
			Description: "Sort field and direction, field:asc or field:desc.",
			Pattern:     sortPattern,
		},
		FilterSchema: {
			Type:        openapi.TypeString,
			Description: "Comma separated field:value pairs.",
			Pattern:     filterPattern,
		},
		ResourceTypeSchema: {
			Type:        openapi.TypeString,
			Description: "Resource type of a search result.",
			Enum:        openapi.StringEnum(resourceTypes...),
		},
		GuidSchema: {
			Type:        openapi.TypeString,
			Description: "Resource GUID, type prefix and ID joined by a dash.",
			Pattern:     guidPattern,
		},
		PlatformSchema: {
			Type:        openapi.TypeInteger,
			Description: "Platform ID.",
		},
		GameSchema: {
			Type:        openapi.TypeInteger,
			Description: "Game ID.",
		},
		"VideoId": {
			Type:        openapi.TypeInteger,
			Description: "Video ID.",
		},
		"TimeToSave": {
			Type:        openapi.TypeInteger,
			Description: "Playback position in seconds.",
			Minimum:     openapi.Int(0),
		},
		"SubscriberOnly": {
			Type:        openapi.TypeBoolean,
			Description: "Only premium videos.",
		},
	}
}
