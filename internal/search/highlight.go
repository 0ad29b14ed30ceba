package search

import (
	"slices"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	markStart = "<mark>"
	markEnd   = "</mark>"
)

// span is a half-open byte range [start, end) into the display text.
type span struct {
	start int
	end   int
}

// Highlight wraps every matched region of the display text in <mark> tags,
// using the same matching rules as the filter's predicate. Non-matched text is
// returned byte for byte. An empty filter leaves the text untouched.
func (f Filter) Highlight(text string) string {
	if f.Empty() {
		return text
	}

	var spans []span
	if f.Mode == ModeExact {
		spans = literalSpans(text, f.Raw)
	} else {
		spans = foldedSpans(text, f.Terms)
	}
	if len(spans) == 0 {
		return text
	}

	spans = mergeSpans(spans)

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(markStart)+len(markEnd)))
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s.start])
		b.WriteString(markStart)
		b.WriteString(text[s.start:s.end])
		b.WriteString(markEnd)
		prev = s.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// literalSpans finds non-overlapping case-sensitive occurrences of needle,
// matching exact-mode containment.
func literalSpans(text, needle string) []span {
	if needle == "" {
		return nil
	}
	var spans []span
	for off := 0; ; {
		i := strings.Index(text[off:], needle)
		if i < 0 {
			return spans
		}
		start := off + i
		spans = append(spans, span{start: start, end: start + len(needle)})
		off = start + len(needle)
	}
}

// foldedSpans locates each folded term inside the diacritic-folded,
// case-lowered projection of the display text and maps the matches back to
// byte ranges of the original. One display rune may fold away entirely (a
// bare combining mark) or survive as one base rune; every surviving folded
// rune remembers the byte range of the display rune it came from.
func foldedSpans(text string, terms []string) []span {
	var (
		folded []rune
		source []span
	)
	for i, r := range text {
		width := len(string(r))
		for _, dr := range norm.NFD.String(string(r)) {
			if unicode.Is(unicode.Mn, dr) {
				continue
			}
			folded = append(folded, unicode.ToLower(dr))
			source = append(source, span{start: i, end: i + width})
		}
	}

	var spans []span
	for _, term := range terms {
		needle := []rune(strings.ToLower(term))
		if len(needle) == 0 {
			continue
		}
		for i := 0; i+len(needle) <= len(folded); i++ {
			if slices.Equal(folded[i:i+len(needle)], needle) {
				spans = append(spans, span{
					start: source[i].start,
					end:   source[i+len(needle)-1].end,
				})
			}
		}
	}
	return spans
}

// mergeSpans sorts the spans and coalesces overlapping or touching ones so
// the rendered tags never nest.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
