package openapi

// Version is the OpenAPI version the generator targets.
const Version = "3.0.2"

// Location is where a parameter or API key is carried.
type Location string

const (
	// InQuery is a query string parameter.
	InQuery Location = "query"
	// InHeader is a request header.
	InHeader Location = "header"
	// InPath is a templated path segment.
	InPath Location = "path"
	// InCookie is a cookie.
	InCookie Location = "cookie"
)

// Style is an OpenAPI parameter serialization style.
type Style string

// Parameter styles.
const (
	StyleMatrix         Style = "matrix"
	StyleLabel          Style = "label"
	StyleForm           Style = "form"
	StyleSimple         Style = "simple"
	StyleSpaceDelimited Style = "spaceDelimited"
	StylePipeDelimited  Style = "pipeDelimited"
	StyleDeepObject     Style = "deepObject"
)

// SecuritySchemeType is the kind of a security scheme.
type SecuritySchemeType string

// Security scheme kinds.
const (
	SecurityAPIKey        SecuritySchemeType = "apiKey"
	SecurityHTTP          SecuritySchemeType = "http"
	SecurityOAuth2        SecuritySchemeType = "oauth2"
	SecurityOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// Document is the root of an OpenAPI document.
type Document struct {
	OpenAPI      string               `json:"openapi"`
	Info         Info                 `json:"info"`
	Servers      []Server             `json:"servers,omitempty"`
	Paths        map[string]*PathItem `json:"paths"`
	Components   Components           `json:"components"`
	Tags         []Tag                `json:"tags,omitempty"`
	ExternalDocs *ExternalDocs        `json:"externalDocs,omitempty"`
}

// NewDocument returns an empty document with its maps allocated.
func NewDocument(info Info) *Document {
	return &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]*PathItem),
		Components: Components{
			Schemas:         make(map[string]*Schema),
			Responses:       make(map[string]*Response),
			SecuritySchemes: make(map[string]*SecurityScheme),
		},
	}
}

// Info is the document metadata.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// Server is an API base URL.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// ExternalDocs links to documentation outside the document.
type ExternalDocs struct {
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// Tag groups operations.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PathItem holds the operations of one path. The API is read-only, so only GET.
type PathItem struct {
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Get         *Operation `json:"get,omitempty"`
}

// SecurityRequirement maps a scheme name to its required scopes.
type SecurityRequirement map[string][]string

// Operation is a single API operation.
type Operation struct {
	OperationID  string                `json:"operationId,omitempty"`
	Summary      string                `json:"summary,omitempty"`
	Description  string                `json:"description,omitempty"`
	Tags         []string              `json:"tags,omitempty"`
	Parameters   []*Parameter          `json:"parameters,omitempty"`
	Responses    Responses             `json:"responses"`
	Security     []SecurityRequirement `json:"security,omitempty"`
	Deprecated   bool                  `json:"deprecated,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty"`
}

// Parameter returns the operation parameter with the given name, or nil.
func (o *Operation) Parameter(name string) *Parameter {
	if o == nil {
		return nil
	}
	for _, param := range o.Parameters {
		if param.Name == name {
			return param
		}
	}
	return nil
}

// Parameter is an operation parameter.
type Parameter struct {
	Name          string         `json:"name"`
	In            Location       `json:"in"`
	Description   string         `json:"description,omitempty"`
	Required      bool           `json:"required"`
	Schema        *OrRef[Schema] `json:"schema,omitempty"`
	Style         Style          `json:"style,omitempty"`
	Explode       *bool          `json:"explode,omitempty"`
	AllowReserved *bool          `json:"allowReserved,omitempty"`
}

// Response is a single response definition.
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// MediaType is the body of a response for one content type.
type MediaType struct {
	Schema *OrRef[Schema] `json:"schema,omitempty"`
}

// Components is the registry of named, reusable objects.
type Components struct {
	Schemas         map[string]*Schema         `json:"schemas,omitempty"`
	Responses       map[string]*Response       `json:"responses,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty"`
}

// SecurityScheme describes how requests authenticate.
type SecurityScheme struct {
	Type        SecuritySchemeType `json:"type"`
	Description string             `json:"description,omitempty"`
	Name        string             `json:"name"`
	In          Location           `json:"in"`
}
