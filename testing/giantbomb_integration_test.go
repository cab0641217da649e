package testing_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffnb/giantbomb-openapi/internal/gen"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
)

const documentation = "testdata/giantbomb/documentation.html"

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

func generate(t *testing.T) []byte {
	t.Helper()
	outputDir := t.TempDir()

	err := gen.New().Build(&gen.Config{
		Debugger:  discardLogger{},
		Source:    documentation,
		OutputDir: outputDir,
	})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(outputDir, gen.DefaultOutputName+".json"))
	require.NoError(t, err)
	return b
}

// objectKeys returns the keys of the JSON object at the start of data in
// encounter order.
func objectKeys(t *testing.T, data []byte) []string {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader(data))

	tok, err := decoder.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for decoder.More() {
		tok, err := decoder.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))

		var skip json.RawMessage
		require.NoError(t, decoder.Decode(&skip))
	}
	return keys
}

func TestGiantBomb_OutputFormat(t *testing.T) {
	b := generate(t)

	keys := objectKeys(t, b)
	assert.True(t, sort.StringsAreSorted(keys), keys)
	assert.Equal(t, []string{"components", "externalDocs", "info", "openapi", "paths", "servers", "tags"}, keys)

	assert.True(t, strings.HasPrefix(string(b), "{\n  \"components\": {\n    \""))
	assert.NotContains(t, string(b), `\/`)
	assert.Contains(t, string(b), `"url": "https://www.giantbomb.com/api"`)
}

func TestGiantBomb_FixedConventions(t *testing.T) {
	doc, err := openapi.Parse(generate(t))
	require.NoError(t, err)

	assert.Equal(t, "3.0.2", doc.OpenAPI)
	assert.Equal(t, "Giant Bomb API", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, base.ServerURL, doc.Servers[0].URL)

	var tags []string
	for _, tag := range doc.Tags {
		tags = append(tags, tag.Name)
	}
	assert.Equal(t, []string{"General", "Wiki", "Search", "Reviews", "Videos", "Live", "Bookmarks"}, tags)

	scheme := doc.Components.SecuritySchemes["api_key"]
	require.NotNil(t, scheme)
	assert.Equal(t, "api_key", scheme.Name)
	assert.Equal(t, "query", string(scheme.In))

	for path, item := range doc.Paths {
		require.NotNil(t, item.Get, path)
		assert.Equal(t, []openapi.SecurityRequirement{{"api_key": {}}}, item.Get.Security, path)
		assert.Contains(t, tags, item.Get.Tags[0], path)
	}
}

func TestGiantBomb_Deterministic(t *testing.T) {
	assert.Equal(t, string(generate(t)), string(generate(t)))
}
