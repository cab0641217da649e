package orchestrator

import (
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
	"github.com/griffnb/giantbomb-openapi/internal/parser/route"
	"github.com/griffnb/giantbomb-openapi/internal/schema"
)

const searchPath = "/search"

// mergeDetails registers every deferred collection schema as an extension of
// its singular resource. Without a singular resource the collection schema is
// registered whole.
func (b *build) mergeDetails() {
	for _, detail := range b.registry.Deferred() {
		singular := b.registry.Schema(detail.Resource)
		if singular == nil {
			b.debug.Printf("Orchestrator: no singular schema %s for %s, registering %s unmerged", detail.Resource, detail.Path, detail.Name)
			b.registry.Add(detail.Name, detail.Schema)
			continue
		}

		b.registry.Add(detail.Name, schema.MergeDetail(detail.Resource, singular, detail.Schema))
	}
}

// unionSearchFields widens the field_list enum of the search operation to every
// property a searchable resource can return. It does nothing when search or
// its field_list parameter is missing.
func (b *build) unionSearchFields() {
	item, ok := b.doc.Paths[searchPath]
	if !ok || item.Get == nil {
		return
	}

	own, ok := route.FieldListNames(item.Get)
	if !ok {
		return
	}

	sets := [][]string{own}
	for _, resource := range base.SearchableResources {
		if registered := b.registry.Schema(resource); registered != nil {
			sets = append(sets, schema.PropertyNames(registered))
		}
	}

	names := schema.UnionFieldNames(sets...)
	route.SetFieldListNames(item.Get, names)
	b.debug.Printf("Orchestrator: search field_list holds %d names", len(names))
}
