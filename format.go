package mypoem

import (
	"fmt"
	"strings"
)

// FormatSegments renders a segment sequence as plain annotated text suitable
// for non-TTY output. Deleted runs are wrapped in [-...-] and added runs in
// {+...+}; unchanged text passes through as-is.
func FormatSegments(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch seg.Classification {
		case Deleted:
			sb.WriteString("[-")
			sb.WriteString(seg.Text)
			sb.WriteString("-]")
		case Added:
			sb.WriteString("{+")
			sb.WriteString(seg.Text)
			sb.WriteString("+}")
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

// FormatSummary renders a change summary as a single line, e.g.
// "+3 −1 words (minor)".
func FormatSummary(s ChangeSummary) string {
	return fmt.Sprintf("+%d −%d words (%s)", s.WordsAdded, s.WordsDeleted, s.Kind())
}
