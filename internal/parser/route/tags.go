package route

import (
	"strings"

	"github.com/griffnb/giantbomb-openapi/internal/parser/base"
)

type tagRule struct {
	tag   string
	match func(path string) bool
}

func contains(parts ...string) func(string) bool {
	return func(path string) bool {
		for _, part := range parts {
			if strings.Contains(path, part) {
				return true
			}
		}
		return false
	}
}

func hasPrefix(prefixes ...string) func(string) bool {
	return func(path string) bool {
		for _, prefix := range prefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
		return false
	}
}

// tagRules are checked in order; the first match wins.
var tagRules = []tagRule{
	{tag: base.TagLive, match: contains("chat", "current-live")},
	{tag: base.TagBookmarks, match: contains("save-time", "saved-time")},
	{tag: base.TagGeneral, match: hasPrefix("/types", "/promo")},
	{tag: base.TagSearch, match: contains("search")},
	{tag: base.TagReviews, match: contains("review")},
	{tag: base.TagVideos, match: hasPrefix("/video")},
}

// Tag returns the single tag of a path. Paths no rule matches are Wiki resources.
func Tag(path string) string {
	for _, rule := range tagRules {
		if rule.match(path) {
			return rule.tag
		}
	}
	return base.TagWiki
}
