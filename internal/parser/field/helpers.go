package field

import "strings"

// nameSeparator splits nested documentation field names like "image.icon_url".
const nameSeparator = "."

// SplitNested splits "parent.child" at the first separator. Deeper names keep
// the remainder as one child key: "a.b.c" gives ("a", "b.c").
func SplitNested(name string) (parent, child string, ok bool) {
	parent, child, ok = strings.Cut(name, nameSeparator)
	if !ok || parent == "" || child == "" {
		return "", "", false
	}
	return parent, child, true
}

// IsPlaceholder reports whether a path segment is a {parameter}.
func IsPlaceholder(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// LiteralSegments returns the non-empty path segments that are not placeholders.
func LiteralSegments(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || IsPlaceholder(segment) {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}
