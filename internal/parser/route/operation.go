package route

import (
	"strings"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
)

// FillInMarker prefixes descriptions that still need a human pass.
const FillInMarker = "[FILL IN] "

// SplitDescription splits a table description at its line breaks. The first
// line is the summary, the remaining lines form the description behind
// FillInMarker.
func SplitDescription(text string) (summary, description string) {
	lines := strings.Split(strings.TrimSpace(text), domain.LineBreak)
	summary = strings.TrimSpace(lines[0])

	var rest []string
	for _, line := range lines[1:] {
		if line = strings.TrimSpace(line); line != "" {
			rest = append(rest, line)
		}
	}
	if len(rest) == 0 {
		return summary, ""
	}

	return summary, FillInMarker + strings.Join(rest, domain.LineBreak)
}
