// Package render prints generated rotas to a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/jakechorley/weekend-rota/pkg/core/rota"
	"github.com/jakechorley/weekend-rota/pkg/core/services"
)

// EmptyRangeMessage is printed when the range holds no Saturday or Sunday
const EmptyRangeMessage = "No Saturdays or Sundays in the selected range."

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dateStyle   = cellStyle.Foreground(lipgloss.Color("#AAAAAA"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// Rota prints the full output of a generation: title, schedule, warnings,
// tally and the seed needed to reproduce it
func Rota(w io.Writer, result *services.GenerateRotaResult) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Weekends from %s to %s",
		result.Start.Format("2006-01-02"), result.End.Format("2006-01-02"))))

	if result.Empty() {
		fmt.Fprintln(w, color.New(color.FgYellow).Sprint(EmptyRangeMessage))
		fmt.Fprintf(w, "Seed: %d\n", result.Seed)
		return
	}

	fmt.Fprintln(w, Schedule(result))
	Warnings(w, result.Warnings)
	fmt.Fprintln(w)
	fmt.Fprintln(w, Tally(result.Tally))
	fmt.Fprintf(w, "Seed: %d\n", result.Seed)
}

// Schedule renders the rota as a table with one row per weekend
func Schedule(result *services.GenerateRotaResult) string {
	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = row.Cells
	}

	columns := result.Columns
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col < len(columns) && columns[col].RoleKey == "" {
				return dateStyle
			}
			return cellStyle
		}).
		Headers(result.Header()...).
		Rows(rows...).
		String()
}

// Tally renders the per-person assignment counts
func Tally(tally []rota.TallyEntry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Member", "Assignments")

	for _, entry := range tally {
		t.Row(entry.Name, strconv.Itoa(entry.Count))
	}

	return t.String()
}

// Warnings prints each warning on its own line, highlighted
func Warnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(w, color.New(color.FgYellow, color.Bold).Sprint("Warnings:"))
	for _, warning := range warnings {
		fmt.Fprintf(w, "  - %s\n", color.New(color.FgYellow).Sprint(warning))
	}
}

// ValidationErrors prints rules a finished run breaks
func ValidationErrors(w io.Writer, errs []rota.ValidationError) {
	for _, verr := range errs {
		fmt.Fprintf(w, "%s %s\n",
			color.New(color.FgRed).Sprintf("[%s]", verr.ConstraintName),
			verr.Description)
	}
}
