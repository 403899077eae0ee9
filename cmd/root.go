// Package cmd provides CLI commands for shelfwarmer.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "shelfwarmer",
	Short: "Convert book-tracking exports into cache-warmer author lists",
	Long: `Shelfwarmer turns a personal book-tracking export (Goodreads CSV)
into author-centric summaries for the cache warming system: a detailed
JSON document, a flat author list, and an author,book_count table.

Examples:
  shelfwarmer convert goodreads detailed -i export.csv -o authors.json
  shelfwarmer convert goodreads cache-csv < export.csv > upload.csv
  shelfwarmer stats -i export.csv --top 10
  shelfwarmer combine 2023.csv 2024.csv -o combined.csv
  shelfwarmer validate goodreads -i export.csv`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(formatsCmd)
}
