// Package search builds text filter predicates from free-text queries and
// highlights the resulting matches. A filter remembers the mode it was built
// with so highlighting applies the same matching rules as the predicate.
package search

import (
	"strings"

	"mdobre/scriptura/internal/query"
	"mdobre/scriptura/internal/textnorm"
)

type Mode int

const (
	// ModeExact matches the query as one substring of the display text,
	// after canonicalizing the query with the translation's normalizer.
	ModeExact Mode = iota
	// ModeNormalized requires every whitespace-separated, diacritic-folded
	// token to appear in the folded search text, in any order.
	ModeNormalized
)

// Filter is a compiled text constraint. The zero value matches nothing.
type Filter struct {
	Mode Mode

	// Raw is the normalized query string, used in exact mode.
	Raw string

	// Terms are the folded tokens, used in normalized mode.
	Terms []string
}

// Build compiles a raw query into a Filter. Exact mode runs the query through
// the translation's display normalizer, so it only fails when the language has
// no registered pipeline; normalized mode never fails, a blank query just
// yields an empty filter.
func Build(q string, exact bool, lang string) (Filter, error) {
	if exact {
		normalized, err := textnorm.Normalize(q, lang)
		if err != nil {
			return Filter{}, err
		}
		return Filter{Mode: ModeExact, Raw: normalized}, nil
	}

	fields := strings.Fields(q)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, textnorm.Fold(f))
	}
	return Filter{Mode: ModeNormalized, Terms: terms}, nil
}

// Empty reports whether the filter has no constraint to apply. Callers should
// treat an empty filter as "zero results" and skip the store entirely.
func (f Filter) Empty() bool {
	if f.Mode == ModeExact {
		return f.Raw == ""
	}
	return len(f.Terms) == 0
}

// Expr translates the filter into a predicate over the verse text fields.
// Returns nil for an empty filter.
func (f Filter) Expr() query.Expr {
	if f.Empty() {
		return nil
	}
	if f.Mode == ModeExact {
		return query.Contains(query.FieldText, f.Raw)
	}
	exprs := make([]query.Expr, 0, len(f.Terms))
	for _, term := range f.Terms {
		exprs = append(exprs, query.ContainsFold(query.FieldTextSearch, term))
	}
	return query.And(exprs...)
}
