package services

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/jakechorley/weekend-rota/internal/config"
	"github.com/jakechorley/weekend-rota/pkg/clients/sheetsclient"
)

// RotaPublisher writes a published rota to a spreadsheet
type RotaPublisher interface {
	PublishRota(spreadsheetID string, publishedRota *sheetsclient.PublishedRota) error
}

// PublishRota converts a generated rota into its sheet form and publishes it
// to the configured spreadsheet
func PublishRota(
	ctx context.Context,
	publisher RotaPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	result *GenerateRotaResult,
) (*sheetsclient.PublishedRota, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Publish.SpreadsheetID == "" {
		return nil, fmt.Errorf("no spreadsheet configured: set publish.spreadsheetID")
	}
	if result.Empty() {
		return nil, fmt.Errorf("rota has no weekends to publish")
	}

	publishedRota := BuildPublishedRota(cfg.Publish.TabPrefix, result)

	logger.Debug("Publishing rota",
		zap.String("run_id", result.RunID),
		zap.String("spreadsheet_id", cfg.Publish.SpreadsheetID),
		zap.String("tab", publishedRota.Title),
		zap.Int("rows", len(publishedRota.Rows)))

	if err := publisher.PublishRota(cfg.Publish.SpreadsheetID, publishedRota); err != nil {
		return nil, fmt.Errorf("failed to publish rota: %w", err)
	}

	logger.Info("Rota published",
		zap.String("run_id", result.RunID),
		zap.String("tab", publishedRota.Title))

	return publishedRota, nil
}

// BuildPublishedRota lays a generated rota out for a sheet tab named
// "<prefix> <start> - <end>"
func BuildPublishedRota(tabPrefix string, result *GenerateRotaResult) *sheetsclient.PublishedRota {
	title := fmt.Sprintf("%s - %s", result.Start.Format("2006-01-02"), result.End.Format("2006-01-02"))
	if tabPrefix != "" {
		title = tabPrefix + " " + title
	}

	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = row.Cells
	}

	tally := make([][]string, len(result.Tally))
	for i, entry := range result.Tally {
		tally[i] = []string{entry.Name, strconv.Itoa(entry.Count)}
	}

	return &sheetsclient.PublishedRota{
		Title:    title,
		Seed:     result.Seed,
		Header:   result.Header(),
		Rows:     rows,
		Tally:    tally,
		Warnings: result.Warnings,
	}
}
