package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/griffnb/giantbomb-openapi/internal/domain"
)

// tableSelector locates the documentation tables: the first one defines the
// response envelope, every following one documents a single path.
const tableSelector = "#default-content > div > table"

const (
	filtersHeader    = "filters"
	fieldsHeader     = "fields"
	urlLabel         = "url"
	descriptionLabel = "description"
)

type section int

const (
	sectionNone section = iota
	sectionFilters
	sectionFields
)

// Parse extracts the documentation tables from an HTML page.
func (s *Service) Parse(r io.Reader) (*domain.Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse documentation: %w", err)
	}

	tables := doc.Find(tableSelector)
	if tables.Length() == 0 {
		return nil, ErrResponseTableNotFound
	}

	page := &domain.Page{
		Response: domain.Table{Fields: parseRows(tables.First())},
	}

	tables.Slice(1, goquery.ToEnd).Each(func(_ int, sel *goquery.Selection) {
		page.Paths = append(page.Paths, parseTable(sel))
	})

	s.debug.Printf("Loader: found %d path tables", len(page.Paths))

	return page, nil
}

// parseRows returns every data row of a table.
func parseRows(sel *goquery.Selection) []domain.Row {
	var rows []domain.Row
	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Children().Filter("td, th")
		if cells.Length() == 0 || isHeaderRow(cells) {
			return
		}
		rows = append(rows, domain.Row{Cells: cellTexts(cells)})
	})
	return rows
}

// parseTable splits a path table into its URL, description, filter rows and field rows.
func parseTable(sel *goquery.Selection) domain.Table {
	table := domain.Table{}
	current := sectionNone
	var preamble strings.Builder

	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Children().Filter("td, th")
		if cells.Length() == 0 {
			return
		}
		texts := cellTexts(cells)

		switch strings.ToLower(texts[0]) {
		case filtersHeader:
			current = sectionFilters
			return
		case fieldsHeader:
			current = sectionFields
			return
		}

		if isHeaderRow(cells) {
			if current == sectionNone {
				preamble.WriteString(strings.Join(texts, " "))
				preamble.WriteString(" ")
			}
			return
		}

		switch current {
		case sectionFilters:
			table.Filters = append(table.Filters, domain.Row{Cells: texts})
		case sectionFields:
			table.Fields = append(table.Fields, domain.Row{Cells: texts})
		default:
			if len(texts) < 2 {
				preamble.WriteString(texts[0])
				preamble.WriteString(" ")
				return
			}
			switch strings.ToLower(texts[0]) {
			case urlLabel:
				table.URL = texts[1]
			case descriptionLabel:
				table.Description = texts[1]
			default:
				preamble.WriteString(strings.Join(texts, " "))
				preamble.WriteString(" ")
			}
		}
	})

	if table.URL == "" {
		if found, ok := FindURL(preamble.String()); ok {
			table.URL = found
		}
	}

	return table
}

// isHeaderRow reports whether every cell of a row is a th.
func isHeaderRow(cells *goquery.Selection) bool {
	return cells.Length() == cells.Filter("th").Length()
}

func cellTexts(cells *goquery.Selection) []string {
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, CellText(cell))
	})
	return texts
}
