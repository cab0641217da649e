package schema

import (
	"sort"

	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

// PropertyNames returns the sorted top-level property names of a schema.
func PropertyNames(s *openapi.Schema) []string {
	if s == nil {
		return nil
	}
	return s.Properties.SortedKeys()
}

// MergeDetail builds the additive detail schema of a resource: every property
// of detail whose name the registered singular schema lacks, composed with a
// reference to the singular schema. Only names are compared.
func MergeDetail(singularName string, singular, detail *openapi.Schema) *openapi.Schema {
	known := make(map[string]struct{})
	if singular != nil {
		for _, name := range singular.Properties.Keys() {
			known[name] = struct{}{}
		}
	}

	extra := openapi.Object()
	if detail != nil {
		for _, name := range detail.Properties.Keys() {
			if _, ok := known[name]; ok {
				continue
			}
			value, _ := detail.Properties.Get(name)
			extra.SetProperty(name, value)
		}
	}

	return ComposeAllOf(openapi.SchemaRef(singularName), extra)
}

// UnionFieldNames merges name sets into one sorted list without duplicates.
func UnionFieldNames(sets ...[]string) []string {
	seen := make(map[string]struct{})
	for _, set := range sets {
		for _, name := range set {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
