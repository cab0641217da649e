// Package domain contains the documentation structures the loader hands to the builders.
package domain

import "strings"

// Row is one documentation table row. The first cell holds a field or filter
// name, the second its description.
type Row struct {
	Cells []string
}

// NewRow builds a two-cell row.
func NewRow(name, description string) Row {
	return Row{Cells: []string{name, description}}
}

// Name returns the trimmed name cell. It fails when the cell is missing or blank.
func (r Row) Name() (string, bool) {
	if len(r.Cells) < 1 {
		return "", false
	}
	name := strings.TrimSpace(r.Cells[0])
	return name, name != ""
}

// Description returns the description cell. It fails when the cell is missing.
func (r Row) Description() (string, bool) {
	if len(r.Cells) < 2 {
		return "", false
	}
	return strings.TrimSpace(r.Cells[1]), true
}

// Table is one documentation table describing a single API path.
type Table struct {
	// URL is the literal URL template, e.g. "https://www.giantbomb.com/api/game/[guid]/"
	URL string

	// Description is the free text of the table, lines separated by LineBreak
	Description string

	// Filters are the rows under the "Filters" header
	Filters []Row

	// Fields are the rows under the "Fields" header
	Fields []Row
}

// LineBreak separates lines in extracted descriptions.
const LineBreak = "\n"

// Page is the parsed documentation page.
type Page struct {
	// Response is the envelope definition table; every row is a field
	Response Table

	// Paths holds one table per API path, in document order
	Paths []Table
}
