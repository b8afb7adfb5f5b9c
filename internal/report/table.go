// pattern: Imperative Shell

package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headers = []string{"Directory", "Branch", "Status", "Last Commit", "Error"}

const statusColumn = 2

// Render writes one table per section to w, preserving section and row
// order exactly as given. Rows are never filtered or reordered.
func Render(w io.Writer, styles *Styles, sections []Section) {
	for _, section := range sections {
		if section.Title != "" {
			fmt.Fprintln(w, styles.TitleStyle().Render(section.Title))
		}
		fmt.Fprintln(w, renderTable(styles, section.Rows))
	}
}

func renderTable(styles *Styles, rows []Row) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.BorderStyle()).
		BorderRow(true).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle()
			}
			if col == statusColumn && row >= 0 && row < len(rows) {
				return styles.GlyphStyle(rows[row].Glyph)
			}
			return styles.CellStyle()
		})

	for _, r := range rows {
		errText := r.ErrorText
		if errText == "" {
			errText = "-"
		}
		t.Row(r.Directory, r.Branch, r.Glyph.Symbol(), r.LastCommit, errText)
	}

	return t.Render()
}
