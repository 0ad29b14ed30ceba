// Package reference resolves human scripture references (book, optional
// chapter, optional verse, optional range end) into predicates over the
// canonical ordering (book_order, chapter, verse).
package reference

import (
	"errors"

	"mdobre/scriptura/internal/books"
	"mdobre/scriptura/internal/query"
)

// LastVerse stands in for "last verse of the chapter" when a range end omits
// the verse number. It is an approximation: the resolver has no per-chapter
// verse counts, and no canonical chapter comes near 999 verses. Callers that
// need exact chapter lengths should consult the translation metadata instead.
const LastVerse = 999

var (
	ErrConflictingParams = errors.New("point and range reference parameters cannot be combined")
	ErrMissingStartBook  = errors.New("reference constraints require a start book")
)

// Params carries the raw reference constraints of a request. Zero values mean
// "not supplied". Point fields (Book/Chapter/Verse) and range fields
// (From*/To*) are mutually exclusive shapes.
type Params struct {
	Book    string
	Chapter int
	Verse   int

	FromBook    string
	FromChapter int
	FromVerse   int
	ToBook      string
	ToChapter   int
	ToVerse     int
}

func (p Params) point() bool {
	return p.Book != "" || p.Chapter != 0 || p.Verse != 0
}

func (p Params) ranged() bool {
	return p.FromBook != "" || p.FromChapter != 0 || p.FromVerse != 0 ||
		p.ToBook != "" || p.ToChapter != 0 || p.ToVerse != 0
}

// None reports whether no reference constraint was supplied at all.
func (p Params) None() bool {
	return !p.point() && !p.ranged()
}

// Resolve turns the raw parameters into an ordering predicate, or nil when no
// constraint was supplied. All failures are client input errors; Resolve does
// no I/O.
func Resolve(p Params) (query.Expr, error) {
	switch {
	case p.None():
		return nil, nil
	case p.point() && p.ranged():
		return nil, ErrConflictingParams
	case p.point():
		return resolvePoint(p.Book, p.Chapter, p.Verse)
	default:
		return resolveRange(p)
	}
}

// resolvePoint handles the no-end case: whole book, whole chapter, or a
// single verse. A verse without a chapter narrows nothing.
func resolvePoint(book string, chapter, verse int) (query.Expr, error) {
	if book == "" {
		return nil, ErrMissingStartBook
	}
	order, err := books.Order(book)
	if err != nil {
		return nil, err
	}

	exprs := []query.Expr{query.Eq(query.FieldBookOrder, order)}
	if chapter > 0 {
		exprs = append(exprs, query.Eq(query.FieldChapter, chapter))
		if verse > 0 {
			exprs = append(exprs, query.Eq(query.FieldVerse, verse))
		}
	}
	return query.And(exprs...), nil
}

func resolveRange(p Params) (query.Expr, error) {
	if p.FromBook == "" {
		return nil, ErrMissingStartBook
	}

	hasEnd := p.ToBook != "" || p.ToChapter != 0 || p.ToVerse != 0
	if !hasEnd {
		// A start without any end is a point query in range clothing.
		return resolvePoint(p.FromBook, p.FromChapter, p.FromVerse)
	}

	startOrder, err := books.Order(p.FromBook)
	if err != nil {
		return nil, err
	}

	startChapter := p.FromChapter
	if startChapter == 0 {
		startChapter = 1
	}
	startVerse := p.FromVerse
	if startVerse == 0 {
		startVerse = 1
	}

	endOrder := startOrder
	if p.ToBook != "" {
		endOrder, err = books.Order(p.ToBook)
		if err != nil {
			return nil, err
		}
	}
	endChapter := p.ToChapter
	if endChapter == 0 {
		endChapter = startChapter
	}
	endVerse := p.ToVerse
	if endVerse == 0 {
		endVerse = LastVerse
	}

	switch {
	case startOrder == endOrder && startChapter == endChapter:
		return query.And(
			query.Eq(query.FieldBookOrder, startOrder),
			query.Eq(query.FieldChapter, startChapter),
			query.Gte(query.FieldVerse, startVerse),
			query.Lte(query.FieldVerse, endVerse),
		), nil

	case startOrder == endOrder:
		return query.And(
			query.Eq(query.FieldBookOrder, startOrder),
			query.Or(
				query.And(
					query.Eq(query.FieldChapter, startChapter),
					query.Gte(query.FieldVerse, startVerse),
				),
				query.And(
					query.Gt(query.FieldChapter, startChapter),
					query.Lt(query.FieldChapter, endChapter),
				),
				query.And(
					query.Eq(query.FieldChapter, endChapter),
					query.Lte(query.FieldVerse, endVerse),
				),
			),
		), nil

	default:
		// Cross-book span: remainder of the start book, every intervening
		// book, and the head of the end book. Always compared on book_order,
		// never on the key, so lexical book naming cannot break ordering.
		return query.Or(
			query.And(
				query.Eq(query.FieldBookOrder, startOrder),
				query.Or(
					query.And(
						query.Eq(query.FieldChapter, startChapter),
						query.Gte(query.FieldVerse, startVerse),
					),
					query.Gt(query.FieldChapter, startChapter),
				),
			),
			query.And(
				query.Gt(query.FieldBookOrder, startOrder),
				query.Lt(query.FieldBookOrder, endOrder),
			),
			query.And(
				query.Eq(query.FieldBookOrder, endOrder),
				query.Or(
					query.Lt(query.FieldChapter, endChapter),
					query.And(
						query.Eq(query.FieldChapter, endChapter),
						query.Lte(query.FieldVerse, endVerse),
					),
				),
			),
		), nil
	}
}
