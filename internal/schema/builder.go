package schema

import (
	"github.com/griffnb/giantbomb-openapi/internal/domain"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/field"
)

const (
	// ResourceTypeSchema is the shared enum of searchable resource names.
	ResourceTypeSchema = "ResourceType"

	// ExamplePlaceholder marks fields whose example and type still need review.
	ExamplePlaceholder = "FILL IN EXAMPLE"

	resourceTypeField = "resource_type"
)

// BuildSchema converts documentation field rows into an object schema.
//
// Rules per row:
//   - rows without a name or description are skipped
//   - "parent.child" adds a string child to a nullable object "parent"
//   - "resource_type" becomes allOf[ref ResourceType, {description}]
//   - anything else is a string with the description and a placeholder example
//
// The result is always an object, possibly without properties.
func BuildSchema(rows []domain.Row) *openapi.Schema {
	result := openapi.Object()

	for _, row := range rows {
		name, ok := row.Name()
		if !ok {
			continue
		}
		description, ok := row.Description()
		if !ok {
			continue
		}

		if parent, child, nested := field.SplitNested(name); nested {
			parentSchema(result, parent).SetProperty(child, openapi.Inline(openapi.String(description)))
			continue
		}

		if name == resourceTypeField {
			result.SetProperty(name, openapi.Inline(openapi.AllOf(
				openapi.SchemaRef(ResourceTypeSchema),
				openapi.Inline(&openapi.Schema{Description: description}),
			)))
			continue
		}

		// a parent already built from dotted rows only takes the description
		if existing := result.Property(name).Value(); existing != nil && existing.Type == openapi.TypeObject {
			existing.Description = description
			continue
		}

		result.SetProperty(name, openapi.Inline(placeholder(description)))
	}

	return result
}

// parentSchema returns the nullable object holding the children of a dotted
// name, creating it on first sighting. A plain property already stored under
// the same name is promoted to an object and keeps its description.
func parentSchema(result *openapi.Schema, name string) *openapi.Schema {
	if existing := result.Property(name); existing != nil && !existing.IsRef() {
		if value := existing.Value(); value != nil && value.Type == openapi.TypeObject {
			return value
		}
	}

	parent := openapi.Object()
	parent.Nullable = true
	if existing := result.Property(name); existing != nil && existing.Value() != nil {
		parent.Description = existing.Value().Description
	}
	result.SetProperty(name, openapi.Inline(parent))

	return parent
}

func placeholder(description string) *openapi.Schema {
	s := openapi.String(description)
	s.Example = ExamplePlaceholder
	return s
}
