package sheetsclient

import (
	"fmt"
	"slices"
	"strconv"
)

// PublishedRota represents the complete published rota data
type PublishedRota struct {
	// Title names the tab, e.g. "Escala 2025-10-04 - 2026-01-04"
	Title string
	Seed  int64

	Header []string
	Rows   [][]string

	// Tally holds one [name, count] pair per roster member
	Tally    [][]string
	Warnings []string
}

// PublishRota publishes a rota to Google Sheets
// If the tab doesn't exist it is created; an existing tab with the same title is overwritten
func (c *Client) PublishRota(spreadsheetID string, publishedRota *PublishedRota) error {
	titles, err := c.SheetTitles(spreadsheetID)
	if err != nil {
		return err
	}

	if slices.Contains(titles, publishedRota.Title) {
		if err := c.ClearSheet(spreadsheetID, publishedRota.Title); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, publishedRota.Title); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.WriteValues(spreadsheetID, publishedRota.Title, BuildRotaValues(publishedRota)); err != nil {
		return fmt.Errorf("failed to write rota to tab: %w", err)
	}

	return nil
}

// BuildRotaValues lays a rota out as sheet rows: the schedule table, a blank
// row, the tally, then the seed and any warnings
func BuildRotaValues(publishedRota *PublishedRota) [][]interface{} {
	values := [][]interface{}{toRow(publishedRota.Header)}
	for _, row := range publishedRota.Rows {
		values = append(values, toRow(row))
	}

	values = append(values, []interface{}{}, []interface{}{"Member", "Assignments"})
	for _, entry := range publishedRota.Tally {
		values = append(values, toRow(entry))
	}

	values = append(values, []interface{}{}, []interface{}{"Seed", strconv.FormatInt(publishedRota.Seed, 10)})

	if len(publishedRota.Warnings) > 0 {
		values = append(values, []interface{}{}, []interface{}{"Warnings"})
		for _, warning := range publishedRota.Warnings {
			values = append(values, []interface{}{warning})
		}
	}

	return values
}

func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}
