package orchestrator

import (
	"fmt"
	"sort"

	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

// Component sections a reference can point into.
const (
	sectionSchemas   = "schemas"
	sectionResponses = "responses"
)

// CollectReferences walks the document and returns every $ref string mapped to
// the first location it was found at (e.g. "GET /games" or "schema Game").
func CollectReferences(doc *openapi.Document) map[string]string {
	refs := make(map[string]string)

	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		op := doc.Paths[path].Get
		if op == nil {
			continue
		}
		source := "GET " + path
		for _, param := range op.Parameters {
			collectFromSchemaOrRef(param.Schema, refs, source)
		}
		collectFromResponse(op.Responses.Default, refs, source)
		for _, code := range op.Responses.StatusCodes() {
			collectFromResponse(op.Responses.Get(code), refs, source)
		}
	}

	for _, name := range sortedKeys(doc.Components.Schemas) {
		collectFromSchema(doc.Components.Schemas[name], refs, "schema "+name)
	}
	for _, name := range sortedKeys(doc.Components.Responses) {
		collectFromResponse(openapi.InlineResponse(doc.Components.Responses[name]), refs, "response "+name)
	}

	return refs
}

// UnresolvedReferences returns "ref (source)" for every reference without a
// matching component, sorted.
func UnresolvedReferences(doc *openapi.Document) []string {
	var unresolved []string
	for ref, source := range CollectReferences(doc) {
		if !resolves(doc, ref) {
			unresolved = append(unresolved, fmt.Sprintf("%s (%s)", ref, source))
		}
	}
	sort.Strings(unresolved)
	return unresolved
}

func resolves(doc *openapi.Document, ref string) bool {
	section, name, err := openapi.RefTarget(ref)
	if err != nil {
		return false
	}
	switch section {
	case sectionSchemas:
		_, ok := doc.Components.Schemas[name]
		return ok
	case sectionResponses:
		_, ok := doc.Components.Responses[name]
		return ok
	}
	return false
}

func collectFromResponse(resp *openapi.ResponseOrRef, refs map[string]string, source string) {
	if resp == nil {
		return
	}
	if resp.IsRef() {
		addRef(refs, resp.Ref(), source)
		return
	}
	value := resp.Value()
	if value == nil {
		return
	}
	for _, mime := range sortedKeys(value.Content) {
		collectFromSchemaOrRef(value.Content[mime].Schema, refs, source)
	}
}

func collectFromSchemaOrRef(s *openapi.SchemaOrRef, refs map[string]string, source string) {
	if s == nil {
		return
	}
	if s.IsRef() {
		addRef(refs, s.Ref(), source)
		return
	}
	collectFromSchema(s.Value(), refs, source)
}

// collectFromSchema recursively walks a schema tree.
func collectFromSchema(s *openapi.Schema, refs map[string]string, source string) {
	if s == nil {
		return
	}
	collectFromSchemaOrRef(s.Items, refs, source)
	for _, name := range s.Properties.Keys() {
		value, _ := s.Properties.Get(name)
		collectFromSchemaOrRef(value, refs, source)
	}
	for _, group := range [][]*openapi.SchemaOrRef{s.AllOf, s.AnyOf, s.OneOf} {
		for _, part := range group {
			collectFromSchemaOrRef(part, refs, source)
		}
	}
}

func addRef(refs map[string]string, ref, source string) {
	if _, exists := refs[ref]; !exists {
		refs[ref] = source
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
