package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source           string  `required:"" help:"URL or file path to extract content from"`
	TeamID           string  `name:"team-id" required:"" help:"Team identifier recorded in the output"`
	Output           string  `default:"output.json" help:"Output file path"`
	ForceContentType string  `name:"force-content-type" help:"Override content type detection for every item"`
	MaxItems         int     `name:"max-items" help:"Maximum number of items to keep (0 = unlimited)"`
	Distiller        string  `default:"trafilatura" enum:"trafilatura,readability" help:"Main content extraction engine"`
	ChapterSplit     bool    `name:"chapter-split" help:"Split PDFs into one item per chapter"`
	RateLimit        float64 `name:"rate-limit" default:"0" help:"Max requests per second per domain (0 = unlimited)"`
	Verbose          bool    `short:"v" help:"Enable debug logging"`
}
