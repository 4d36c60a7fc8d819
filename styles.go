package mypoem

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a rendered diff.
type Styles struct {
	Added     ColorPair // words present only in the newer draft
	Deleted   ColorPair // words present only in the older draft
	Unchanged ColorPair // words common to both drafts
	Header    ColorPair // revision header line ("Draft 2 → Draft 3")
	Summary   ColorPair // change summary line (+N −M words)
	Help      ColorPair // key binding hints
}

// Theme provides styles for rendering diffs.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
