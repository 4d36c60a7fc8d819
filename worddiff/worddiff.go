// Package worddiff computes word-level diffs between two drafts of a poem.
//
// The pipeline is tokenize → align → merge: the text is split into words
// carrying their trailing whitespace, the two word sequences are aligned via
// a longest-common-subsequence walk, and runs of same-classification words
// are merged into display-ready segments. Matching ignores whitespace, but
// emitted text preserves the original whitespace exactly.
package worddiff

import (
	"strings"

	"github.com/stevenrichter16/mypoem"
)

// Compile-time interface verification.
var _ mypoem.Differ = (*Differ)(nil)

// Differ tokenizes drafts and computes word-level diffs.
// It is stateless and safe for concurrent use.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Token is one word of a draft plus any whitespace that follows it.
// Text is the raw whitespace-inclusive substring; Key is the trimmed form
// used for comparisons. The two are kept separately so matching can ignore
// whitespace while output remains whitespace-exact.
type Token struct {
	Text string
	Key  string
}

// Tokenize splits text into word tokens. Concatenating the token texts in
// order reproduces the input exactly. Whitespace trails the word it follows;
// whitespace before the first word becomes a prefix of the first token, and
// whitespace-only input yields a single token with an empty Key.
func Tokenize(text string) []Token {
	if len(text) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(text)/4+1)
	i := 0

	for i < len(text) {
		// Whitespace run: attach to the previous token, or hold it as
		// the prefix of the next word if no token exists yet.
		start := i
		for i < len(text) && isWhitespace(text[i]) {
			i++
		}
		space := text[start:i]

		if i == len(text) {
			// Trailing whitespace, or whitespace-only input.
			if space != "" {
				if len(tokens) > 0 {
					tokens[len(tokens)-1].Text += space
				} else {
					tokens = append(tokens, Token{Text: space})
				}
			}
			break
		}

		wordStart := i
		for i < len(text) && !isWhitespace(text[i]) {
			i++
		}
		word := text[wordStart:i]

		if space != "" && len(tokens) > 0 {
			tokens[len(tokens)-1].Text += space
			space = ""
		}
		tokens = append(tokens, Token{Text: space + word, Key: word})
	}

	return tokens
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Diff returns classified segments for the change from old to new, in
// reading order. It is total over all string inputs: empty inputs and
// identical inputs take fast paths, everything else goes through the full
// tokenize → align → merge pipeline.
func (d *Differ) Diff(old, new string) []mypoem.Segment {
	if old == "" && new == "" {
		return nil
	}
	if old == "" {
		return []mypoem.Segment{{
			Text:           new,
			Classification: mypoem.Added,
			WordCount:      len(Tokenize(new)),
		}}
	}
	if new == "" {
		return []mypoem.Segment{{
			Text:           old,
			Classification: mypoem.Deleted,
			WordCount:      len(Tokenize(old)),
		}}
	}
	if old == new {
		return []mypoem.Segment{{
			Text:           old,
			Classification: mypoem.Unchanged,
			WordCount:      len(Tokenize(old)),
		}}
	}

	return Merge(align(Tokenize(old), Tokenize(new)))
}

// align walks both token sequences against their longest common subsequence
// and classifies every token. LCS tokens are anchors: a token on only one
// side of the current anchor is a pure insertion or deletion; when neither
// side matches the anchor, the pair is a substitution (deleted then added).
// The result has one single-word segment per consumed token, ready for Merge.
func align(oldTokens, newTokens []Token) []mypoem.Segment {
	lcs := longestCommon(oldTokens, newTokens)

	out := make([]mypoem.Segment, 0, len(oldTokens)+len(newTokens))
	emit := func(tok Token, c mypoem.Classification) {
		out = append(out, mypoem.Segment{Text: tok.Text, Classification: c, WordCount: 1})
	}

	oldIdx, newIdx, lcsIdx := 0, 0, 0
	for oldIdx < len(oldTokens) || newIdx < len(newTokens) {
		switch {
		case oldIdx >= len(oldTokens):
			emit(newTokens[newIdx], mypoem.Added)
			newIdx++

		case newIdx >= len(newTokens):
			emit(oldTokens[oldIdx], mypoem.Deleted)
			oldIdx++

		default:
			inLCS := lcsIdx < len(lcs)
			oldMatch := inLCS && oldTokens[oldIdx].Key == lcs[lcsIdx]
			newMatch := inLCS && newTokens[newIdx].Key == lcs[lcsIdx]

			switch {
			case oldMatch && newMatch:
				emit(oldTokens[oldIdx], mypoem.Unchanged)
				oldIdx++
				newIdx++
				lcsIdx++
			case oldMatch:
				// Old side already sits on the anchor; the new
				// token is a pure insertion.
				emit(newTokens[newIdx], mypoem.Added)
				newIdx++
			case newMatch:
				emit(oldTokens[oldIdx], mypoem.Deleted)
				oldIdx++
			default:
				// Substitution: neither side matches the anchor
				// (or the LCS is exhausted).
				emit(oldTokens[oldIdx], mypoem.Deleted)
				emit(newTokens[newIdx], mypoem.Added)
				oldIdx++
				newIdx++
			}
		}
	}

	return out
}

// longestCommon returns the LCS of the two token sequences as an ordered
// slice of trimmed keys. Uses O(m·n) dynamic programming with a flat table;
// fine for poem-length text, not intended for large documents.
func longestCommon(oldTokens, newTokens []Token) []string {
	m, n := len(oldTokens), len(newTokens)

	// table[i*stride+j] corresponds to table[i][j]
	table := make([]int, (m+1)*(n+1))
	stride := n + 1

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldTokens[i-1].Key == newTokens[j-1].Key {
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
				table[i*stride+j] = table[(i-1)*stride+j]
			} else {
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	lcs := make([]string, table[m*stride+n])
	k := len(lcs)

	// Backtrack from table[m][n]; matches are discovered last-to-first.
	i, j := m, n
	for i > 0 && j > 0 {
		if oldTokens[i-1].Key == newTokens[j-1].Key {
			k--
			lcs[k] = oldTokens[i-1].Key
			i--
			j--
		} else if table[(i-1)*stride+j] > table[i*stride+j-1] {
			i--
		} else {
			j--
		}
	}

	return lcs
}

// Merge collapses adjacent same-classification segments into maximal runs,
// concatenating text and summing word counts. Empty segments are dropped,
// and merging an already-merged sequence yields the same result.
func Merge(segments []mypoem.Segment) []mypoem.Segment {
	var out []mypoem.Segment
	var current mypoem.Segment
	var text strings.Builder
	open := false

	flush := func() {
		if open && text.Len() > 0 {
			current.Text = text.String()
			out = append(out, current)
		}
		text.Reset()
		open = false
	}

	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		if open && seg.Classification == current.Classification {
			text.WriteString(seg.Text)
			current.WordCount += seg.WordCount
			continue
		}
		flush()
		current = mypoem.Segment{Classification: seg.Classification, WordCount: seg.WordCount}
		text.WriteString(seg.Text)
		open = true
	}
	flush()

	return out
}
