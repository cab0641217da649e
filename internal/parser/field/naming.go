package field

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts snake_case, kebab-case and dotted names to PascalCase.
// "field_list" becomes "FieldList", "current-live" becomes "CurrentLive".
func ToPascalCase(in string) string {
	words := strings.FieldsFunc(in, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' ' || r == '/'
	})

	title := cases.Title(language.English)
	var b strings.Builder
	for _, word := range words {
		b.WriteString(title.String(word))
	}

	return b.String()
}

// Singularize strips one trailing "s".
func Singularize(name string) string {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return name[:len(name)-1]
	}
	return name
}

// ResourceName derives a component name from a path: the last segment that
// is not a {placeholder}, singularized and PascalCased. "/games" gives "Game",
// "/video/{guid}" gives "Video".
func ResourceName(path string) string {
	segments := LiteralSegments(path)
	if len(segments) == 0 {
		return ""
	}
	return ToPascalCase(Singularize(segments[len(segments)-1]))
}

// OperationID names the GET operation of a path: "get" followed by the
// PascalCased literal segments. "/video/{guid}" gives "getVideo".
func OperationID(path string) string {
	var b strings.Builder
	b.WriteString("get")
	for _, segment := range LiteralSegments(path) {
		b.WriteString(ToPascalCase(segment))
	}
	return b.String()
}
