package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := map[string]string{
		"field_list":   "FieldList",
		"limit":        "Limit",
		"current-live": "CurrentLive",
		"video_id":     "VideoId",
		"image.icon":   "ImageIcon",
		"":             "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ToPascalCase(in))
		})
	}
}

func TestSingularize(t *testing.T) {
	assert.Equal(t, "game", Singularize("games"))
	assert.Equal(t, "video", Singularize("video"))
	assert.Equal(t, "s", Singularize("s"))
}

func TestResourceName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/games", want: "Game"},
		{path: "/game/{guid}", want: "Game"},
		{path: "/types", want: "Type"},
		{path: "/video/current-live", want: "CurrentLive"},
		{path: "/video/saved-times", want: "SavedTime"},
		{path: "/{guid}", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceName(tt.path))
		})
	}
}

func TestOperationID(t *testing.T) {
	assert.Equal(t, "getGames", OperationID("/games"))
	assert.Equal(t, "getVideo", OperationID("/video/{guid}"))
	assert.Equal(t, "getVideoSaveTime", OperationID("/video/save-time"))
	assert.Equal(t, "getVideoComments", OperationID("/video/{guid}/comments/{id}"))
}

func TestSplitNested(t *testing.T) {
	parent, child, ok := SplitNested("image.icon_url")
	assert.True(t, ok)
	assert.Equal(t, "image", parent)
	assert.Equal(t, "icon_url", child)

	parent, child, ok = SplitNested("a.b.c")
	assert.True(t, ok)
	assert.Equal(t, "a", parent)
	assert.Equal(t, "b.c", child)

	_, _, ok = SplitNested("name")
	assert.False(t, ok)
	_, _, ok = SplitNested(".hidden")
	assert.False(t, ok)
	_, _, ok = SplitNested("trailing.")
	assert.False(t, ok)
}

func TestLiteralSegments(t *testing.T) {
	assert.Equal(t, []string{"video", "comments"}, LiteralSegments("/video/{guid}/comments/{id}"))
	assert.Nil(t, LiteralSegments("/"))
	assert.False(t, IsPlaceholder("{}"))
	assert.True(t, IsPlaceholder("{guid}"))
}
