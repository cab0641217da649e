package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
)

const fixture = "../../testing/testdata/giantbomb/documentation.html"

func findTable(t *testing.T, page *domain.Page, url string) domain.Table {
	t.Helper()
	for _, table := range page.Paths {
		if table.URL == url {
			return table
		}
	}
	t.Fatalf("no table with URL %s", url)
	return domain.Table{}
}

func TestLoad_File(t *testing.T) {
	page, err := NewService().Load(context.Background(), fixture)
	require.NoError(t, err)

	t.Run("response table", func(t *testing.T) {
		// Header row is dropped, the one-cell row is kept for the extractor to skip
		require.Len(t, page.Response.Fields, 9)
		name, ok := page.Response.Fields[0].Name()
		require.True(t, ok)
		assert.Equal(t, "error", name)

		_, ok = page.Response.Fields[8].Description()
		assert.False(t, ok)
	})

	t.Run("path tables", func(t *testing.T) {
		assert.Len(t, page.Paths, 21)

		games := findTable(t, page, "https://www.giantbomb.com/api/games/")
		assert.Equal(t, "Get a list of Game items.\nSupports paging.", games.Description)
		assert.Len(t, games.Filters, 7)
		assert.Len(t, games.Fields, 9)

		name, _ := games.Filters[1].Name()
		assert.Equal(t, "field_list", name)
	})

	t.Run("line breaks and entities", func(t *testing.T) {
		games := findTable(t, page, "https://www.giantbomb.com/api/games/")
		description, ok := games.Filters[4].Description()
		require.True(t, ok)
		assert.Equal(t, "The result set can be sorted by the marked fields in the Fields section below.\nFormat: &sort=field:direction", description)
	})

	t.Run("table without filters", func(t *testing.T) {
		saved := findTable(t, page, "https://www.giantbomb.com/api/video/saved-times/")
		assert.Empty(t, saved.Filters)
		assert.Len(t, saved.Fields, 2)
	})
}

func TestLoad_Remote(t *testing.T) {
	body, err := os.ReadFile(fixture)
	require.NoError(t, err)

	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	service := NewService(WithUserAgent("docs-test/1.0"))
	page, err := service.Load(context.Background(), server.URL+"/api/documentation/")
	require.NoError(t, err)
	assert.Len(t, page.Paths, 21)
	assert.Equal(t, "docs-test/1.0", userAgent)
}

func TestLoad_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewService().Load(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewService().Load(context.Background(), "does/not/exist.html")
	assert.Error(t, err)
}

func TestParse_NoTables(t *testing.T) {
	_, err := NewService().Parse(strings.NewReader(`<html><body><div id="default-content"><div><p>nothing</p></div></div></body></html>`))
	assert.ErrorIs(t, err, ErrResponseTableNotFound)
}

func TestParse_URLFromPreamble(t *testing.T) {
	page, err := NewService().Parse(strings.NewReader(`
<div id="default-content"><div>
<table><tr><td>status_code</td><td>Status.</td></tr></table>
<table>
  <tr><th colspan="2">game: https://www.giantbomb.com/api/game/[guid]/</th></tr>
  <tr><th colspan="2">Fields</th></tr>
  <tr><td>name</td><td>Name.</td></tr>
  <tr><td>deck</td><td>Deck.</td></tr>
</table>
</div></div>`))
	require.NoError(t, err)
	require.Len(t, page.Paths, 1)
	assert.Equal(t, "https://www.giantbomb.com/api/game/[guid]/", page.Paths[0].URL)
	assert.Empty(t, page.Paths[0].Filters)
	assert.Len(t, page.Paths[0].Fields, 2)
}

func TestParse_RowsOutsideSectionsIgnored(t *testing.T) {
	page, err := NewService().Parse(strings.NewReader(`
<div id="default-content"><div>
<table><tr><td>status_code</td><td>Status.</td></tr></table>
<table>
  <tr><th>URL</th><td>https://www.giantbomb.com/api/types/</td></tr>
  <tr><td>stray</td><td>Not in a section.</td></tr>
  <tr><th colspan="2">Filters</th></tr>
  <tr><td>format</td><td>Format.</td></tr>
</table>
</div></div>`))
	require.NoError(t, err)
	require.Len(t, page.Paths, 1)
	assert.Len(t, page.Paths[0].Filters, 1)
	assert.Empty(t, page.Paths[0].Fields)
}
