package loader

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// {guid}
	placeholderPattern = regexp.MustCompile(`\{([^{}/]+)\}`)
	// [guid], the documentation's own placeholder spelling
	bracketPattern = regexp.MustCompile(`\[([^\[\]/]+)\]`)
	urlPattern     = regexp.MustCompile(`https?://[^\s"'<>]+`)
)

// PathParameters returns the {placeholder} names of a path template, left to right.
func PathParameters(path string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(path, -1)
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}

// FindURL returns the first literal http(s) URL found in text.
func FindURL(text string) (string, bool) {
	found := urlPattern.FindString(text)
	return found, found != ""
}

// PathFromURL turns a documented URL template into an API path key relative
// to basePath:
//
//	PathFromURL("https://www.giantbomb.com/api/game/[guid]/", "/api") → "/game/{guid}"
func PathFromURL(raw string, basePath string) (string, error) {
	templated := bracketPattern.ReplaceAllString(strings.TrimSpace(raw), "{$1}")

	parsed, err := url.Parse(templated)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidTableURL, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w %q: not an absolute URL", ErrInvalidTableURL, raw)
	}

	path := strings.TrimPrefix(parsed.Path, strings.TrimSuffix(basePath, "/"))
	path = "/" + strings.Trim(path, "/")
	if path == "/" {
		return "", fmt.Errorf("%w %q: no path below %s", ErrInvalidTableURL, raw, basePath)
	}

	return path, nil
}
