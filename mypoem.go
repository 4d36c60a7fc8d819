// Package mypoem provides domain types for tracking and comparing poem drafts.
package mypoem

import "context"

// Classification tags a token or segment with how it changed between drafts.
type Classification int

// Token classifications.
const (
	Unchanged Classification = iota
	Added
	Deleted
)

// String returns the lowercase name of the classification.
func (c Classification) String() string {
	switch c {
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	default:
		return "unchanged"
	}
}

// Segment is a contiguous run of same-classification words in a diff.
// Text preserves the original whitespace of the constituent words.
type Segment struct {
	Text           string
	Classification Classification
	WordCount      int // number of words merged into this segment
}

// Differ computes word-level differences between two drafts.
type Differ interface {
	// Diff returns classified segments in reading order. Unchanged and
	// added segments together carry the new text; unchanged and deleted
	// segments together carry the old text.
	Diff(old, new string) []Segment
}

// RevisionStore persists and retrieves a poem's revision history.
type RevisionStore interface {
	// Load reads the revision history at path. A missing file is an
	// empty history, not an error.
	Load(path string) ([]Revision, error)
	// Save writes the full revision history to path.
	Save(path string, revisions []Revision) error
}

// Viewer displays a revision history interactively.
type Viewer interface {
	// View displays the history and blocks until the user exits.
	View(ctx context.Context, revisions []Revision) error
}

// DraftRequest describes the draft to generate.
type DraftRequest struct {
	Subject  string // what the poem is about
	Previous string // previous draft content, empty for a first draft
}

// Drafter generates the next draft of a poem.
type Drafter interface {
	Draft(ctx context.Context, req DraftRequest) (string, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
