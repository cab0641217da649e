package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

func TestBuildSchema_Empty(t *testing.T) {
	result := BuildSchema(nil)
	require.NotNil(t, result)
	assert.Equal(t, openapi.TypeObject, result.Type)
	assert.Equal(t, 0, result.Properties.Len())

	b, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{}}`, string(b))
}

func TestBuildSchema_PlainFields(t *testing.T) {
	result := BuildSchema([]domain.Row{
		domain.NewRow("  name ", "Name of the game."),
		domain.NewRow("deck", "Brief summary."),
	})

	assert.Equal(t, []string{"name", "deck"}, result.Properties.Keys())

	name := result.Property("name").Value()
	require.NotNil(t, name)
	assert.Equal(t, openapi.TypeString, name.Type)
	assert.Equal(t, "Name of the game.", name.Description)
	assert.Equal(t, ExamplePlaceholder, name.Example)
}

func TestBuildSchema_SkipsBrokenRows(t *testing.T) {
	result := BuildSchema([]domain.Row{
		{Cells: nil},
		{Cells: []string{"only_name"}},
		{Cells: []string{"   ", "blank name"}},
		domain.NewRow("id", "Unique ID."),
	})

	assert.Equal(t, []string{"id"}, result.Properties.Keys())
}

func TestBuildSchema_DottedNames(t *testing.T) {
	result := BuildSchema([]domain.Row{
		domain.NewRow("foo.baz", "Second."),
		domain.NewRow("name", "Name."),
		domain.NewRow("foo.bar", "First."),
	})

	assert.Equal(t, []string{"foo", "name"}, result.Properties.Keys())

	foo := result.Property("foo").Value()
	require.NotNil(t, foo)
	assert.Equal(t, openapi.TypeObject, foo.Type)
	assert.True(t, foo.Nullable)
	assert.Equal(t, []string{"baz", "bar"}, foo.Properties.Keys())

	for _, child := range []string{"bar", "baz"} {
		value := foo.Property(child).Value()
		require.NotNil(t, value)
		assert.Equal(t, openapi.TypeString, value.Type)
	}
	assert.Equal(t, "First.", foo.Property("bar").Value().Description)
}

func TestBuildSchema_DeepDottedNames(t *testing.T) {
	result := BuildSchema([]domain.Row{
		domain.NewRow("video.image.icon_url", "Icon."),
	})

	video := result.Property("video").Value()
	require.NotNil(t, video)
	assert.Equal(t, []string{"image.icon_url"}, video.Properties.Keys())
}

func TestBuildSchema_ParentAndChildRows(t *testing.T) {
	t.Run("plain row first", func(t *testing.T) {
		result := BuildSchema([]domain.Row{
			domain.NewRow("image", "Main image."),
			domain.NewRow("image.icon_url", "Icon."),
		})

		image := result.Property("image").Value()
		assert.Equal(t, openapi.TypeObject, image.Type)
		assert.Equal(t, "Main image.", image.Description)
		assert.Equal(t, []string{"icon_url"}, image.Properties.Keys())
	})

	t.Run("plain row last", func(t *testing.T) {
		result := BuildSchema([]domain.Row{
			domain.NewRow("image.icon_url", "Icon."),
			domain.NewRow("image", "Main image."),
		})

		image := result.Property("image").Value()
		assert.Equal(t, openapi.TypeObject, image.Type)
		assert.True(t, image.Nullable)
		assert.Equal(t, "Main image.", image.Description)
		assert.Equal(t, []string{"icon_url"}, image.Properties.Keys())
	})
}

func TestBuildSchema_ResourceType(t *testing.T) {
	result := BuildSchema([]domain.Row{
		domain.NewRow("resource_type", "The type of resource."),
	})

	b, err := json.Marshal(result.Property("resource_type"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"allOf": [
			{"$ref": "#/components/schemas/ResourceType"},
			{"description": "The type of resource."}
		]
	}`, string(b))
}
