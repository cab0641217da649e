// Package openapi models the subset of an OpenAPI 3.0 document the generator emits.
package openapi

// Type is a JSON Schema primitive type name.
type Type string

const (
	// TypeObject represent an object value.
	TypeObject Type = "object"
	// TypeArray represent an array value.
	TypeArray Type = "array"
	// TypeString represent a string value.
	TypeString Type = "string"
	// TypeInteger represent an integer value.
	TypeInteger Type = "integer"
	// TypeNumber represent a number value.
	TypeNumber Type = "number"
	// TypeBoolean represent a boolean value.
	TypeBoolean Type = "boolean"
	// TypeNull represent a null value.
	TypeNull Type = "null"
)

// Schema is one JSON-Schema-like node. Type is empty for pure compositions.
type Schema struct {
	Type        Type             `json:"type,omitempty"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Example     string           `json:"example,omitempty"`
	Minimum     *int             `json:"minimum,omitempty"`
	Maximum     *int             `json:"maximum,omitempty"`
	Pattern     string           `json:"pattern,omitempty"`
	Nullable    bool             `json:"nullable,omitempty"`
	Enum        *Enum            `json:"enum,omitempty"`
	Properties  *Properties      `json:"properties,omitempty"`
	Items       *OrRef[Schema]   `json:"items,omitempty"`
	AllOf       []*OrRef[Schema] `json:"allOf,omitempty"`
	AnyOf       []*OrRef[Schema] `json:"anyOf,omitempty"`
	OneOf       []*OrRef[Schema] `json:"oneOf,omitempty"`
	XML         *XML             `json:"xml,omitempty"`
}

// XML carries XML serialization hints.
type XML struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
}

// Object builds an object schema with an empty property map.
func Object() *Schema {
	return &Schema{Type: TypeObject, Properties: NewProperties()}
}

// String builds a string schema.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// Integer builds an integer schema.
func Integer(description string) *Schema {
	return &Schema{Type: TypeInteger, Description: description}
}

// Boolean builds a boolean schema.
func Boolean(description string) *Schema {
	return &Schema{Type: TypeBoolean, Description: description}
}

// Array builds an array schema; an array always has items.
func Array(items *OrRef[Schema]) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// AllOf builds an untyped allOf composition.
func AllOf(parts ...*OrRef[Schema]) *Schema {
	return &Schema{AllOf: parts}
}

// OneOf builds an untyped oneOf composition.
func OneOf(parts ...*OrRef[Schema]) *Schema {
	return &Schema{OneOf: parts}
}

// Int returns a pointer to v, for Minimum and Maximum.
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v, for the optional parameter flags.
func Bool(v bool) *bool {
	return &v
}

// SetProperty adds or replaces a property, allocating the map on first use.
func (s *Schema) SetProperty(name string, value *OrRef[Schema]) {
	if s.Properties == nil {
		s.Properties = NewProperties()
	}
	s.Properties.Set(name, value)
}

// Property returns the named property or nil.
func (s *Schema) Property(name string) *OrRef[Schema] {
	if s == nil {
		return nil
	}
	value, _ := s.Properties.Get(name)
	return value
}
