package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathParameters(t *testing.T) {
	assert.Equal(t, []string{"guid", "id"}, PathParameters("/video/{guid}/comments/{id}"))
	assert.Equal(t, []string{"guid"}, PathParameters("/game/{guid}"))
	assert.Empty(t, PathParameters("/games"))
}

func TestFindURL(t *testing.T) {
	found, ok := FindURL("game detail: https://www.giantbomb.com/api/game/[guid]/ (GET)")
	require.True(t, ok)
	assert.Equal(t, "https://www.giantbomb.com/api/game/[guid]/", found)

	_, ok = FindURL("no link here")
	assert.False(t, ok)
}

func TestPathFromURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://www.giantbomb.com/api/games/", want: "/games"},
		{raw: "https://www.giantbomb.com/api/game/[guid]/", want: "/game/{guid}"},
		{raw: "https://www.giantbomb.com/api/game/{guid}", want: "/game/{guid}"},
		{raw: " https://www.giantbomb.com/api/video/current-live/ ", want: "/video/current-live"},
		{raw: "https://www.giantbomb.com/api/", wantErr: true},
		{raw: "/api/games/", wantErr: true},
		{raw: "http://[::1:bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := PathFromURL(tt.raw, "/api")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTableURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
