package base

import (
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

const (
	// Title is the document title.
	Title = "Giant Bomb API"

	// APIVersion is the version reported in info.
	APIVersion = "1.0"

	// ServerURL is the documented API base.
	ServerURL = "https://www.giantbomb.com/api"

	// BasePath is the path prefix of ServerURL, stripped from table URLs.
	BasePath = "/api"

	// DocumentationURL is the page the document is generated from.
	DocumentationURL = "https://www.giantbomb.com/api/documentation/"

	description = "Generated from the Giant Bomb API documentation. " +
		"Field types and examples are not documented upstream and default to strings."
)

func (s *Service) setInfo() {
	s.doc.Info = openapi.Info{
		Title:       Title,
		Description: description,
		Version:     APIVersion,
	}
	s.doc.ExternalDocs = &openapi.ExternalDocs{
		Description: "Giant Bomb API documentation",
		URL:         s.documentationURL,
	}
}

func (s *Service) setServers() {
	s.doc.Servers = []openapi.Server{{URL: ServerURL}}
}
