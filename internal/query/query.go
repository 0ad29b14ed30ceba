// Package query defines a small predicate algebra over verse fields. The
// resolver and search builder construct expression trees pure-functionally;
// the store adapter translates a tree once into its native query language.
package query

type Field string

const (
	FieldBookOrder  Field = "book_order"
	FieldChapter    Field = "chapter"
	FieldVerse      Field = "verse"
	FieldText       Field = "text"
	FieldTextSearch Field = "text_search"
)

type Op int

const (
	OpEq Op = iota
	OpGt
	OpGte
	OpLt
	OpLte
	OpContains     // case-sensitive substring
	OpContainsFold // case-insensitive substring
)

type Expr interface {
	expr()
}

// Cmp compares a field against a literal value.
type Cmp struct {
	Field Field
	Op    Op
	Value any
}

// AndExpr is satisfied when every child is satisfied.
type AndExpr struct {
	Exprs []Expr
}

// OrExpr is satisfied when at least one child is satisfied.
type OrExpr struct {
	Exprs []Expr
}

func (Cmp) expr()     {}
func (AndExpr) expr() {}
func (OrExpr) expr()  {}

func Eq(f Field, v any) Expr  { return Cmp{Field: f, Op: OpEq, Value: v} }
func Gt(f Field, v any) Expr  { return Cmp{Field: f, Op: OpGt, Value: v} }
func Gte(f Field, v any) Expr { return Cmp{Field: f, Op: OpGte, Value: v} }
func Lt(f Field, v any) Expr  { return Cmp{Field: f, Op: OpLt, Value: v} }
func Lte(f Field, v any) Expr { return Cmp{Field: f, Op: OpLte, Value: v} }

func Contains(f Field, s string) Expr     { return Cmp{Field: f, Op: OpContains, Value: s} }
func ContainsFold(f Field, s string) Expr { return Cmp{Field: f, Op: OpContainsFold, Value: s} }

// And conjoins the given expressions, dropping nils. It returns nil for an
// empty conjunction and the child itself for a single-element one.
func And(exprs ...Expr) Expr {
	kept := compact(exprs)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return AndExpr{Exprs: kept}
	}
}

// Or disjoins the given expressions with the same nil and singleton handling
// as And.
func Or(exprs ...Expr) Expr {
	kept := compact(exprs)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return OrExpr{Exprs: kept}
	}
}

func compact(exprs []Expr) []Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			kept = append(kept, e)
		}
	}
	return kept
}
