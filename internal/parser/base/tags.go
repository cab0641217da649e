package base

import (
	"github.com/griffnb/giantbomb-openapi/internal/openapi"
)

// Operation tags.
const (
	TagGeneral   = "General"
	TagWiki      = "Wiki"
	TagSearch    = "Search"
	TagReviews   = "Reviews"
	TagVideos    = "Videos"
	TagLive      = "Live"
	TagBookmarks = "Bookmarks"
)

// Tags is the fixed tag list, in document order.
var Tags = []openapi.Tag{
	{Name: TagGeneral, Description: "Reference data such as resource types and promos."},
	{Name: TagWiki, Description: "Wiki resources: games, people, companies and the rest of the database."},
	{Name: TagSearch, Description: "Full text search across the wiki resources."},
	{Name: TagReviews, Description: "Staff and user reviews."},
	{Name: TagVideos, Description: "Videos, shows and categories."},
	{Name: TagLive, Description: "Live streams and chats."},
	{Name: TagBookmarks, Description: "Saved playback positions of videos."},
}

func (s *Service) setTags() {
	s.doc.Tags = append([]openapi.Tag(nil), Tags...)
}
