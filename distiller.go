package harvest

// DistillOptions configures main-content extraction.
type DistillOptions struct {
	// IncludeComments keeps user comment sections in the output.
	IncludeComments bool

	// IncludeTables keeps tabular content in the output.
	IncludeTables bool
}

// Distilled holds the main content extracted from an HTML page.
type Distilled struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Distiller extracts main content from HTML pages, removing boilerplate.
type Distiller interface {
	// Distill processes raw HTML and returns the main content.
	// A page with no recoverable main content returns a Distilled with an
	// empty ContentHTML, not an error.
	Distill(html string, opts DistillOptions) (*Distilled, error)
}
