package base

import (
	"strings"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/schema"
)

// ResponseSchema is the shared envelope every standard response is wrapped in.
const ResponseSchema = "Response"

// ResultsProperty is the envelope property carrying the payload.
const ResultsProperty = "results"

const versionProperty = "version"

// integerFields are envelope fields documented as numbers.
var integerFields = map[string]bool{
	"status_code": true,
	"limit":       true,
	"offset":      true,
}

const countPrefix = "number_of_"

// EnvelopeSchema builds the Response schema from the response table. Counters
// and status codes are typed as integers, results is left to each operation's
// extension and a version property is always present.
func EnvelopeSchema(rows []domain.Row) *openapi.Schema {
	envelope := schema.BuildSchema(rows)
	envelope.Description = "Wrapper of every standard response."

	for _, name := range envelope.Properties.Keys() {
		if !integerFields[name] && !strings.HasPrefix(name, countPrefix) {
			continue
		}
		value, _ := envelope.Properties.Get(name)
		envelope.SetProperty(name, openapi.Inline(openapi.Integer(value.Value().Description)))
	}

	envelope.Properties.Delete(ResultsProperty)

	if envelope.Property(versionProperty) == nil {
		envelope.SetProperty(versionProperty, openapi.Inline(openapi.String("The version of the API.")))
	}

	return envelope
}
