package search

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

const (
	// excerptRadius is how many runes of context surround the first term
	// occurrence on each side.
	excerptRadius = 80

	// excerptFallback is how many leading runes an excerpt shows when no
	// term occurs in the body.
	excerptFallback = 160

	ellipsis = "…"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// BuildExcerpt renders a result snippet from a record body: whitespace
// runs collapse to single spaces, the window centers on the first
// case-insensitive occurrence of any term (or falls back to the leading
// runes), clipped sides gain an ellipsis, and every term occurrence inside
// the window is wrapped in <mark>. The result is HTML with all text
// escaped exactly once; only the markers and ellipses are markup.
func BuildExcerpt(body string, terms []string) string {
	text := strings.TrimSpace(whitespaceRuns.ReplaceAllString(body, " "))
	runes := []rune(text)
	lower := lowerRunes(runes)

	pos, matchLen := firstOccurrence(lower, terms)
	var start, end int
	if pos < 0 {
		start, end = 0, min(len(runes), excerptFallback)
	} else {
		start = max(0, pos-excerptRadius)
		end = min(len(runes), pos+matchLen+excerptRadius)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(highlight(runes[start:end], lower[start:end], terms))
	if end < len(runes) {
		b.WriteString(ellipsis)
	}
	return b.String()
}

// firstOccurrence returns the rune offset and length of the earliest term
// occurrence, or (-1, 0) when no term occurs.
func firstOccurrence(lower []rune, terms []string) (int, int) {
	best, bestLen := -1, 0
	for _, term := range terms {
		t := lowerRunes([]rune(term))
		if len(t) == 0 {
			continue
		}
		if i := runeIndex(lower, t); i >= 0 && (best < 0 || i < best) {
			best, bestLen = i, len(t)
		}
	}
	return best, bestLen
}

// highlight escapes the window and wraps every term occurrence in <mark>.
// window and lower are the same rune span of the original and lowercased
// text.
func highlight(window, lower []rune, terms []string) string {
	lterms := make([][]rune, 0, len(terms))
	for _, term := range terms {
		if t := lowerRunes([]rune(term)); len(t) > 0 {
			lterms = append(lterms, t)
		}
	}

	var b strings.Builder
	last := 0
	for i := 0; i < len(window); {
		matched := 0
		for _, t := range lterms {
			if len(t) > matched && hasPrefix(lower[i:], t) {
				matched = len(t)
			}
		}
		if matched == 0 {
			i++
			continue
		}
		b.WriteString(html.EscapeString(string(window[last:i])))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(string(window[i : i+matched])))
		b.WriteString("</mark>")
		i += matched
		last = i
	}
	b.WriteString(html.EscapeString(string(window[last:])))
	return b.String()
}

// lowerRunes lowercases rune by rune, preserving length so offsets in the
// lowered span map 1:1 onto the original. strings.ToLower can change the
// rune count for some case folds and would misalign the window.
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runeIndex(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if hasPrefix(haystack[i:], needle) {
			return i
		}
	}
	return -1
}

func hasPrefix(runes, prefix []rune) bool {
	if len(runes) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if runes[i] != r {
			return false
		}
	}
	return true
}
