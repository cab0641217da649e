package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/spec"
)

const (
	// SchemasPrefix is the JSON pointer prefix of component schemas.
	SchemasPrefix = "#/components/schemas/"
	// ResponsesPrefix is the JSON pointer prefix of component responses.
	ResponsesPrefix = "#/components/responses/"
)

// OrRef holds either a reference to a named component or an inline value,
// never both. Build one with Inline, SchemaRef, InlineResponse or ResponseRef.
type OrRef[T any] struct {
	ref   string
	value *T
}

// SchemaOrRef is a schema slot: an inline Schema or a "#/components/schemas/..." pointer.
// Types inside the Schema cycle spell out OrRef[Schema]; the alias is for callers.
type SchemaOrRef = OrRef[Schema]

// ResponseOrRef is a response slot: an inline Response or a "#/components/responses/..." pointer.
type ResponseOrRef = OrRef[Response]

// Inline wraps an inline schema.
func Inline(s *Schema) *SchemaOrRef {
	return &SchemaOrRef{value: s}
}

// SchemaRef points at the component schema registered under name.
func SchemaRef(name string) *SchemaOrRef {
	return &SchemaOrRef{ref: SchemasPrefix + name}
}

// InlineResponse wraps an inline response.
func InlineResponse(r *Response) *ResponseOrRef {
	return &ResponseOrRef{value: r}
}

// ResponseRef points at the component response registered under name.
func ResponseRef(name string) *ResponseOrRef {
	return &ResponseOrRef{ref: ResponsesPrefix + name}
}

// IsRef reports whether o is the reference variant.
func (o *OrRef[T]) IsRef() bool {
	return o != nil && o.ref != ""
}

// Ref returns the reference string, empty for inline values.
func (o *OrRef[T]) Ref() string {
	if o == nil {
		return ""
	}
	return o.ref
}

// Value returns the inline value, nil for references.
func (o *OrRef[T]) Value() *T {
	if o == nil {
		return nil
	}
	return o.value
}

// MarshalJSON encodes references as {"$ref": ...} and inline values as themselves.
func (o OrRef[T]) MarshalJSON() ([]byte, error) {
	if o.ref != "" {
		return json.Marshal(struct {
			Ref string `json:"$ref"`
		}{Ref: o.ref})
	}
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON picks the reference variant whenever "$ref" is present.
func (o *OrRef[T]) UnmarshalJSON(data []byte) error {
	var probe struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Ref != "" {
		o.ref, o.value = probe.Ref, nil
		return nil
	}

	value := new(T)
	if err := json.Unmarshal(data, value); err != nil {
		return err
	}
	o.ref, o.value = "", value
	return nil
}

// RefTarget splits a local component reference such as
// "#/components/schemas/Game" into its section ("schemas") and name ("Game").
func RefTarget(ref string) (section string, name string, err error) {
	parsed, err := spec.NewRef(ref)
	if err != nil {
		return "", "", fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	if !parsed.HasFragmentOnly {
		return "", "", fmt.Errorf("reference %q is not local to the document", ref)
	}

	tokens := parsed.GetPointer().DecodedTokens()
	if len(tokens) != 3 || tokens[0] != "components" {
		return "", "", fmt.Errorf("reference %q does not point at a component", ref)
	}
	return tokens[1], tokens[2], nil
}

// RefName returns the component name a reference points at.
func RefName(ref string) (string, error) {
	_, name, err := RefTarget(ref)
	return name, err
}
