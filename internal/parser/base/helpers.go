package base

import (
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

// Media types a response is served in, selected by the format query parameter.
const (
	MimeJSON  = "application/json"
	MimeXML   = "application/xml"
	MimeJSONP = "application/jsonp"
)

var mimeTypes = []string{MimeJSON, MimeXML, MimeJSONP}

// MirrorContent returns one media type entry per supported format, all
// sharing body.
func MirrorContent(body *openapi.SchemaOrRef) map[string]*openapi.MediaType {
	content := make(map[string]*openapi.MediaType, len(mimeTypes))
	for _, mime := range mimeTypes {
		content[mime] = &openapi.MediaType{Schema: body}
	}
	return content
}
