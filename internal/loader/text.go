package loader

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
)

// CellText returns the plain text of a table cell. Markup is stripped, <br>
// and block elements become domain.LineBreak, and whitespace is collapsed
// within each line.
func CellText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeText(&b, child)
		}
	}
	return normalizeLines(b.String())
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(strings.Map(func(r rune) rune {
			if r == '\n' || r == '\r' || r == '\t' {
				return ' '
			}
			return r
		}, n.Data))
		return
	case html.ElementNode:
		if n.DataAtom == atom.Br {
			b.WriteString(domain.LineBreak)
			return
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeText(b, child)
	}

	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.P, atom.Div, atom.Li:
			b.WriteString(domain.LineBreak)
		}
	}
}

// normalizeLines collapses runs of spaces and drops empty lines.
func normalizeLines(s string) string {
	lines := strings.Split(s, domain.LineBreak)
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, domain.LineBreak)
}
