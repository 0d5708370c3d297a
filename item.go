package harvest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Content type labels assigned by extractors and by router inference.
// ForceContentType on the orchestration layer may introduce arbitrary
// caller-supplied labels beyond this set.
const (
	TypeBlog           = "blog"
	TypeBook           = "book"
	TypeRedditComment  = "reddit_comment"
	TypeLinkedInPost   = "linkedin_post"
	TypeCallTranscript = "call_transcript"
	TypeOther          = "other"
)

// Item represents one normalized unit of extracted content.
//
// Items are created exclusively inside a strategy's Extract call and are
// immutable thereafter, except for the single permitted mutation of
// ContentType by the orchestration layer (explicit override or router
// inference; last write wins). SourceURL, when present, is the URL the
// content was actually derived from after any internal redirection (e.g., a
// drive file's direct-download URL rather than the enclosing folder URL).
type Item struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
	SourceURL   string `json:"source_url,omitempty"`
	Author      string `json:"author,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

// Validate returns an error if the item contains invalid fields.
// Empty content is valid here; the orchestration layer drops such items.
func (i *Item) Validate() error {
	if i.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	if i.ContentType == "" {
		return Errorf(EINVALID, "item content type required")
	}
	return nil
}

// Hash returns a hash of the item's content using xxhash.
// The orchestration layer uses it to warn about duplicate-content items.
func (i *Item) Hash() string {
	h := xxhash.Sum64String(i.Content)
	return fmt.Sprintf("%x", h)
}

// Export is the persisted output record: the surviving items plus the
// caller-supplied team identifier.
type Export struct {
	TeamID string  `json:"team_id"`
	Items  []*Item `json:"items"`
}

// Validate returns an error if the export contains invalid fields.
func (e *Export) Validate() error {
	if e.TeamID == "" {
		return Errorf(EINVALID, "export team ID required")
	}
	return nil
}
