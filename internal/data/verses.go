package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"mdobre/scriptura/internal/query"
)

type VerseModel interface {
	Query(translationID int64, cond query.Expr, filters Filters) ([]*Verse, Metadata, error)
	ChapterCounts(translationID int64) ([]*ChapterCount, error)
	Replace(translationID int64, verses []*Verse) error
}

type Verse struct {
	TranslationID int64  `json:"-"`
	BookKey       string `json:"book_key"`
	BookOrder     int    `json:"book_order"`
	Chapter       int    `json:"chapter"`
	Verse         int    `json:"verse"`
	Text          string `json:"text"`
	TextSearch    string `json:"-"`
}

// ChapterCount is one row of a translation's shape: how many verses a chapter
// holds.
type ChapterCount struct {
	BookKey    string
	BookOrder  int
	Chapter    int
	VerseCount int
}

type verseModel struct {
	DB *sql.DB
}

func NewVerseModel(db *sql.DB) *verseModel {
	return &verseModel{DB: db}
}

// Query returns one page of the verses matching the predicate, in canonical
// order, together with pagination metadata computed from the full match
// count. A nil predicate matches the whole translation.
func (m *verseModel) Query(translationID int64, cond query.Expr, filters Filters) ([]*Verse, Metadata, error) {
	where := "translation_id = $1"
	args := []any{translationID}
	if cond != nil {
		where += " AND " + exprSQL(cond, &args)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var totalItems int
	countQuery := "SELECT count(*) FROM verses WHERE " + where
	if err := m.DB.QueryRowContext(ctx, countQuery, args...).Scan(&totalItems); err != nil {
		return nil, Metadata{}, err
	}

	metadata := calculateMetadata(totalItems, filters.Page, filters.PageSize)
	if totalItems == 0 {
		return []*Verse{}, metadata, nil
	}

	args = append(args, filters.limit(), filters.offset())
	pageQuery := fmt.Sprintf(`
		SELECT book_key, book_order, chapter, verse, text
		FROM verses
		WHERE %s
		ORDER BY book_order, chapter, verse
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := m.DB.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, Metadata{}, err
	}
	defer rows.Close()

	verses := []*Verse{}

	for rows.Next() {
		var v Verse
		err := rows.Scan(&v.BookKey, &v.BookOrder, &v.Chapter, &v.Verse, &v.Text)
		if err != nil {
			return nil, Metadata{}, err
		}
		verses = append(verses, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, Metadata{}, err
	}

	return verses, metadata, nil
}

// ChapterCounts returns the translation's chapter shape in canonical order.
func (m *verseModel) ChapterCounts(translationID int64) ([]*ChapterCount, error) {
	query := `
		SELECT book_key, book_order, chapter, count(*)
		FROM verses
		WHERE translation_id = $1
		GROUP BY book_key, book_order, chapter
		ORDER BY book_order, chapter`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, translationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []*ChapterCount{}

	for rows.Next() {
		var c ChapterCount
		err := rows.Scan(&c.BookKey, &c.BookOrder, &c.Chapter, &c.VerseCount)
		if err != nil {
			return nil, err
		}
		counts = append(counts, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(counts) == 0 {
		return nil, ErrRecordNotFound
	}

	return counts, nil
}

// Replace swaps out the translation's verse set in one transaction: delete
// what is there, then bulk-copy the new rows.
func (m *verseModel) Replace(translationID int64, verses []*Verse) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM verses WHERE translation_id = $1`, translationID)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"verses",
		"translation_id", "book_key", "book_order", "chapter", "verse", "text", "text_search",
	))
	if err != nil {
		return err
	}

	for _, v := range verses {
		_, err = stmt.ExecContext(ctx, translationID, v.BookKey, v.BookOrder, v.Chapter, v.Verse, v.Text, v.TextSearch)
		if err != nil {
			stmt.Close()
			return err
		}
	}

	// Flush the copy buffer.
	if _, err = stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return err
	}
	if err = stmt.Close(); err != nil {
		return err
	}

	return tx.Commit()
}
