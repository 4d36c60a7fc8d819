package mypoem

import (
	"strings"
	"time"
)

// ChangeKind classifies how substantially a revision differs from its
// predecessor.
type ChangeKind string

// Revision change kinds.
const (
	ChangeInitial ChangeKind = "initial" // first draft, nothing to compare
	ChangeMinor   ChangeKind = "minor"
	ChangeMajor   ChangeKind = "major"
)

// Revision is one stored draft of a poem.
type Revision struct {
	ID         string     `json:"id"`
	Seq        int        `json:"seq"` // 1-based position in the history
	Content    string     `json:"content"`
	WordCount  int        `json:"word_count"`
	LineCount  int        `json:"line_count"`
	ChangeKind ChangeKind `json:"change_kind,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewRevision creates a revision for content, computing word and line counts.
func NewRevision(id string, seq int, content string, createdAt time.Time) Revision {
	return Revision{
		ID:        id,
		Seq:       seq,
		Content:   content,
		WordCount: CountWords(content),
		LineCount: CountLines(content),
		CreatedAt: createdAt,
	}
}

// CountWords returns the number of whitespace-separated words in content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CountLines returns the number of lines in content. Empty content has no
// lines; a trailing newline does not start a new line.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// majorChangeRatio is the minimum changed-word ratio for a revision to be
// classified as a major change.
const majorChangeRatio = 0.4

// ChangeSummary aggregates word counts by classification for one diff.
type ChangeSummary struct {
	WordsAdded     int `json:"words_added"`
	WordsDeleted   int `json:"words_deleted"`
	WordsUnchanged int `json:"words_unchanged"`
}

// Summarize tallies segment word counts by classification.
func Summarize(segments []Segment) ChangeSummary {
	var s ChangeSummary
	for _, seg := range segments {
		switch seg.Classification {
		case Added:
			s.WordsAdded += seg.WordCount
		case Deleted:
			s.WordsDeleted += seg.WordCount
		case Unchanged:
			s.WordsUnchanged += seg.WordCount
		}
	}
	return s
}

// Kind classifies the summary as a minor or major change based on the ratio
// of changed words to all words touched by the diff.
func (s ChangeSummary) Kind() ChangeKind {
	changed := s.WordsAdded + s.WordsDeleted
	total := changed + 2*s.WordsUnchanged
	if total == 0 {
		return ChangeMinor
	}
	if float64(changed)/float64(total) >= majorChangeRatio {
		return ChangeMajor
	}
	return ChangeMinor
}
