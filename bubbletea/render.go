package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stevenrichter16/mypoem"
)

// renderConfig holds all rendering parameters for renderHistory.
type renderConfig struct {
	revisions []mypoem.Revision
	pair      int // index of the newer revision of the pair; 0 for single-revision histories
	differ    mypoem.Differ
	styles    mypoem.Styles
	renderer  *lipgloss.Renderer
	width     int
}

// renderHistory renders one revision pair as a styled word-level diff.
// If renderer is nil, the default lipgloss renderer is used.
func renderHistory(cfg renderConfig) string {
	if len(cfg.revisions) == 0 {
		return "(no revisions)"
	}

	headerStyle := styleFromColorPair(cfg.styles.Header, cfg.renderer)
	summaryStyle := styleFromColorPair(cfg.styles.Summary, cfg.renderer)

	var sb strings.Builder

	if cfg.pair == 0 {
		// Single revision: nothing to diff, show the draft as-is.
		rev := cfg.revisions[0]
		title := fmt.Sprintf("Draft %d", rev.Seq)
		sb.WriteString(headerStyle.Render(renderHeader(title, fmt.Sprintf("%dw %dl", rev.WordCount, rev.LineCount), cfg.width)))
		sb.WriteString("\n\n")
		sb.WriteString(styleFromColorPair(cfg.styles.Unchanged, cfg.renderer).Render(rev.Content))
		return sb.String()
	}

	old := cfg.revisions[cfg.pair-1]
	new := cfg.revisions[cfg.pair]
	segments := cfg.differ.Diff(old.Content, new.Content)
	summary := mypoem.Summarize(segments)

	title := fmt.Sprintf("Draft %d → Draft %d", old.Seq, new.Seq)
	stats := fmt.Sprintf("+%d −%d", summary.WordsAdded, summary.WordsDeleted)
	sb.WriteString(headerStyle.Render(renderHeader(title, stats, cfg.width)))
	sb.WriteString("\n")
	sb.WriteString(summaryStyle.Render(mypoem.FormatSummary(summary)))
	sb.WriteString("\n\n")
	sb.WriteString(renderSegments(segments, cfg.styles, cfg.renderer))

	return sb.String()
}

// renderHeader builds a full-width header line with box-drawing fill:
// ── title ─────────────────── stats ──
func renderHeader(title, stats string, width int) string {
	middle := "── " + title + " "
	end := " " + stats + " ──"

	fillWidth := width - lipgloss.Width(middle) - lipgloss.Width(end)
	if fillWidth < 3 {
		fillWidth = 3
	}
	return middle + strings.Repeat("─", fillWidth) + end
}

// renderSegments styles each segment by its classification. Segment text can
// span lines; styles are applied per segment so whitespace stays intact.
func renderSegments(segments []mypoem.Segment, styles mypoem.Styles, renderer *lipgloss.Renderer) string {
	addedStyle := styleFromColorPair(styles.Added, renderer)
	deletedStyle := styleFromColorPair(styles.Deleted, renderer)
	unchangedStyle := styleFromColorPair(styles.Unchanged, renderer)

	var sb strings.Builder
	for _, seg := range segments {
		switch seg.Classification {
		case mypoem.Added:
			sb.WriteString(renderSplit(seg.Text, addedStyle))
		case mypoem.Deleted:
			sb.WriteString(renderSplit(seg.Text, deletedStyle))
		default:
			sb.WriteString(unchangedStyle.Render(seg.Text))
		}
	}
	return sb.String()
}

// renderSplit styles text line by line so highlight backgrounds don't extend
// across the newlines embedded in a segment.
func renderSplit(text string, style lipgloss.Style) string {
	parts := strings.Split(text, "\n")
	for i, part := range parts {
		if part != "" {
			parts[i] = style.Render(part)
		}
	}
	return strings.Join(parts, "\n")
}

// footer renders the help line with the transient status, if any.
func (m Model) footer() string {
	helpStyle := styleFromColorPair(m.styles.Help, nil)
	help := "h/l: revision  j/k: scroll  c: copy  q: quit"
	if m.status != "" {
		help += "  · " + m.status
	}
	return helpStyle.Render(help)
}

// styleFromColorPair converts a mypoem.ColorPair to a lipgloss style.
func styleFromColorPair(cp mypoem.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
