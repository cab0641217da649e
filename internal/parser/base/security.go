package base

import (
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

// SecuritySchemeName is the API key scheme every operation requires.
const SecuritySchemeName = "api_key"

// InvalidAPIKeyResponse is the shared 401 response.
const InvalidAPIKeyResponse = "InvalidAPIKey"

func (s *Service) setSecurity() {
	s.doc.Components.SecuritySchemes[SecuritySchemeName] = &openapi.SecurityScheme{
		Type:        openapi.SecurityAPIKey,
		Description: "API key sent as the api_key query parameter.",
		Name:        SecuritySchemeName,
		In:          openapi.InQuery,
	}
}

// Security returns the requirement attached to every operation: the API key
// scheme without scopes.
func Security() []openapi.SecurityRequirement {
	return []openapi.SecurityRequirement{{SecuritySchemeName: []string{}}}
}

func invalidAPIKey() *openapi.Response {
	return &openapi.Response{
		Description: "Invalid API Key",
		Content:     MirrorContent(openapi.SchemaRef(ResponseSchema)),
	}
}
