// Package textnorm provides the two text forms stored for every verse: a
// canonical display form (language-specific) and a diacritic-folded search
// form (language-agnostic). Both are computed once at ingestion; at query time
// only the query string itself is normalized.
package textnorm

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Normalizer func(string) string

// pipelines maps language code -> display normalizer. Languages without
// special orthography rules register an identity pipeline; codes absent from
// the registry are rejected rather than silently passed through.
var pipelines = map[string]Normalizer{
	"en": func(s string) string { return s },
	"ro": normalizeRomanian,
}

// Supported reports whether a display pipeline is registered for the language.
func Supported(lang string) bool {
	_, ok := pipelines[lang]
	return ok
}

// Normalize canonicalizes text to the language's display form.
func Normalize(text, lang string) (string, error) {
	fn, ok := pipelines[lang]
	if !ok {
		return "", ErrUnsupportedLanguage
	}
	return fn(text), nil
}

var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold strips combining marks, producing the accent-insensitive search form.
// Comparison against it is done case-insensitively; Fold itself preserves case.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransform, text)
	if err != nil {
		return text
	}
	return folded
}

const (
	combiningCommaBelow = '\u0326'
	combiningCedilla    = '\u0327'
)

// Legacy precomposed cedilla forms still map to the modern comma-below
// codepoints after recomposition.
var cedillaToComma = strings.NewReplacer(
	"\u015f", "\u0219", // ş -> ș
	"\u015e", "\u0218", // Ş -> Ș
	"\u0163", "\u021b", // ţ -> ț
	"\u0162", "\u021a", // Ţ -> Ț
)

// normalizeRomanian canonicalizes the three Unicode spellings of Romanian
// s/t-comma (combining comma-below, combining cedilla, precomposed cedilla) to
// the modern precomposed comma-below forms, in canonical composition.
func normalizeRomanian(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))

	rs := []rune(decomposed)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if i+1 < len(rs) && (rs[i+1] == combiningCommaBelow || rs[i+1] == combiningCedilla) {
			switch r {
			case 's':
				b.WriteRune('\u0219') // ș
				i++
				continue
			case 'S':
				b.WriteRune('\u0218') // Ș
				i++
				continue
			case 't':
				b.WriteRune('\u021b') // ț
				i++
				continue
			case 'T':
				b.WriteRune('\u021a') // Ț
				i++
				continue
			}
		}
		b.WriteRune(r)
	}

	recomposed := norm.NFC.String(b.String())
	recomposed = cedillaToComma.Replace(recomposed)
	return norm.NFC.String(recomposed)
}
