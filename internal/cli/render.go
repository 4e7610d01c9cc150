package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-fort-note/internal/markup"
	"github.com/MKhiriev/go-fort-note/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lockedStyle = cellStyle.Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

const timeLayout = "2006-01-02 15:04"

func renderNoteTable(notes []models.Note) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		state := ""
		if n.Locked {
			state = "locked"
		}
		rows = append(rows, []string{
			n.ID,
			n.Title,
			state,
			strconv.Itoa(n.PlaintextLength),
			formatModified(n),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "STATE", "LENGTH", "MODIFIED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(notes) && notes[row].Locked {
				return lockedStyle
			}
			return cellStyle
		})

	return t.String()
}

func renderNote(w io.Writer, n models.Note) {
	fmt.Fprintln(w, titleStyle.Render(n.Title))
	fmt.Fprintln(w, helpStyle.Render(fmt.Sprintf("%s  modified %s", n.ID, formatModified(n))))
	fmt.Fprintln(w)

	if n.Locked {
		fmt.Fprintln(w, helpStyle.Render(fmt.Sprintf("[locked, %d characters]", n.PlaintextLength)))
		return
	}
	fmt.Fprintln(w, markup.PlainText(n.Content))
}

func renderBulkResult(w io.Writer, verb string, r models.BulkResult) {
	fmt.Fprintf(w, "%s: %d, skipped: %d, failed: %d\n", verb, len(r.Changed), len(r.Skipped), len(r.Failed))
	if len(r.Failed) > 0 {
		fmt.Fprintf(w, "failed ids: %s\n", strings.Join(r.Failed, ", "))
	}
}

func formatModified(n models.Note) string {
	if n.ModifiedAt == 0 {
		return "-"
	}
	return n.Modified().Local().Format(timeLayout)
}
