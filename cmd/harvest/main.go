package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/extract"
	"github.com/fwojciec/harvest/fs"
	"github.com/fwojciec/harvest/htmltomarkdown"
	harvesthttp "github.com/fwojciec/harvest/http"
	"github.com/fwojciec/harvest/pdf"
	"github.com/fwojciec/harvest/readability"
	harvestrod "github.com/fwojciec/harvest/rod"
	"github.com/fwojciec/harvest/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("harvest"),
		kong.Description("Extract content from various sources into a standardized format"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 0 || (len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help")) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := harvesthttp.NewFetcher()
	defer fetcher.Close()

	var distiller harvest.Distiller
	switch cli.Distiller {
	case "readability":
		distiller = readability.NewDistiller()
	default:
		distiller = trafilatura.NewDistiller()
	}

	var limiter harvest.DomainLimiter
	if cli.RateLimit > 0 {
		limiter = extract.NewDomainLimiter(cli.RateLimit)
	}

	router := extract.NewRouter(extract.Config{
		Fetcher:      fetcher,
		Distiller:    distiller,
		Converter:    htmltomarkdown.NewConverter(),
		Browsers:     harvestrod.NewLauncher(harvestrod.WithUserAgent(harvesthttp.DefaultUserAgent)),
		PDFs:         pdf.NewReader(),
		Sitemaps:     harvesthttp.NewSitemapSource(fetcher),
		Limiter:      limiter,
		Logger:       logger,
		ChapterSplit: cli.ChapterSplit,
	})

	return runExtraction(ctx, cli, router.Extractor(cli.Source), router.InferContentType, fs.NewWriter(cli.Output), logger)
}
