package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/harvest"
	harvestslog "github.com/fwojciec/harvest/slog"
)

// runExtraction executes a single extraction and writes the result.
// Failures that only affect individual items have already been absorbed
// by the extractor, so any error returned here is unexpected.
func runExtraction(ctx context.Context, cli *CLI, extractor harvest.Extractor, infer func(source, content string) string, writer harvest.ExportWriter, logger *slog.Logger) error {
	extractor = harvestslog.NewLoggingExtractor(extractor, logger)

	items, err := extractor.Extract(ctx, cli.Source)
	if err != nil {
		return err
	}

	if cli.MaxItems > 0 && len(items) > cli.MaxItems {
		logger.Info("limiting items", slog.Int("total", len(items)), slog.Int("max", cli.MaxItems))
		items = items[:cli.MaxItems]
	}

	kept := make([]*harvest.Item, 0, len(items))
	seen := make(map[string]bool)
	skipped := 0
	for _, item := range items {
		if cli.ForceContentType != "" {
			item.ContentType = cli.ForceContentType
		} else if item.ContentType == "" {
			item.ContentType = infer(cli.Source, item.Content)
		}
		if item.Content == "" {
			skipped++
			continue
		}
		if h := item.Hash(); seen[h] {
			logger.Warn("duplicate content", slog.String("title", item.Title))
		} else {
			seen[h] = true
		}
		kept = append(kept, item)
	}
	if skipped > 0 {
		logger.Warn("skipped items with empty content", slog.Int("count", skipped))
	}

	export := &harvest.Export{TeamID: cli.TeamID, Items: kept}
	if err := writer.WriteExport(ctx, export); err != nil {
		return err
	}

	logger.Info("extraction complete",
		slog.Int("items", len(kept)),
		slog.String("output", cli.Output),
	)
	return nil
}
