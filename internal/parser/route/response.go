package route

import (
	"net/http"
	"strconv"

	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
)

var (
	statusOK           = strconv.Itoa(http.StatusOK)
	statusUnauthorized = strconv.Itoa(http.StatusUnauthorized)
)

// AttachResponses sets the 200 response carrying body in every supported
// format, and the shared 401 response.
func AttachResponses(op *openapi.Operation, body *openapi.SchemaOrRef) {
	op.Responses.Set(statusOK, openapi.InlineResponse(&openapi.Response{
		Description: http.StatusText(http.StatusOK),
		Content:     base.MirrorContent(body),
	}))
	op.Responses.Set(statusUnauthorized, openapi.ResponseRef(base.InvalidAPIKeyResponse))
}
