package data

import (
	"fmt"
	"strings"

	"mdobre/scriptura/internal/query"
)

// columns is the safelist of verse columns a predicate may reference. The
// query package's field names are the column names, but anything outside the
// list is a programming error, not user input, so we panic like we would for
// an unsafe sort parameter.
var columns = map[query.Field]string{
	query.FieldBookOrder:  "book_order",
	query.FieldChapter:    "chapter",
	query.FieldVerse:      "verse",
	query.FieldText:       "text",
	query.FieldTextSearch: "text_search",
}

// exprSQL translates a predicate tree into a SQL condition, appending the
// bind values to args. Placeholder numbering continues from the values
// already collected.
func exprSQL(e query.Expr, args *[]any) string {
	switch x := e.(type) {
	case query.Cmp:
		return cmpSQL(x, args)
	case query.AndExpr:
		return joinSQL(x.Exprs, " AND ", args)
	case query.OrExpr:
		return joinSQL(x.Exprs, " OR ", args)
	}
	panic(fmt.Sprintf("unsupported expression type %T", e))
}

func cmpSQL(c query.Cmp, args *[]any) string {
	column, ok := columns[c.Field]
	if !ok {
		panic("unsafe predicate column: " + string(c.Field))
	}

	switch c.Op {
	case query.OpEq, query.OpGt, query.OpGte, query.OpLt, query.OpLte:
		*args = append(*args, c.Value)
		return fmt.Sprintf("%s %s $%d", column, opSQL(c.Op), len(*args))
	case query.OpContains:
		*args = append(*args, "%"+escapeLike(c.Value.(string))+"%")
		return fmt.Sprintf("%s LIKE $%d", column, len(*args))
	case query.OpContainsFold:
		*args = append(*args, "%"+escapeLike(c.Value.(string))+"%")
		return fmt.Sprintf("%s ILIKE $%d", column, len(*args))
	}
	panic(fmt.Sprintf("unsupported comparison operator %d", c.Op))
}

func opSQL(op query.Op) string {
	switch op {
	case query.OpEq:
		return "="
	case query.OpGt:
		return ">"
	case query.OpGte:
		return ">="
	case query.OpLt:
		return "<"
	case query.OpLte:
		return "<="
	}
	panic(fmt.Sprintf("unsupported comparison operator %d", op))
}

func joinSQL(exprs []query.Expr, sep string, args *[]any) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, exprSQL(e, args))
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// escapeLike neutralizes the LIKE metacharacters in a literal search string.
// Postgres treats backslash as the escape character by default.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
