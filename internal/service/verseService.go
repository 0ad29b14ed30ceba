package service

import (
	"errors"
	"log/slog"

	"mdobre/scriptura/internal/books"
	"mdobre/scriptura/internal/data"
	"mdobre/scriptura/internal/query"
	"mdobre/scriptura/internal/reference"
	"mdobre/scriptura/internal/search"
)

// TranslationCache is the read-through cache for translation lookups. A miss
// is (nil, nil); cache failures are logged and treated as misses, never
// surfaced to the caller.
type TranslationCache interface {
	GetTranslation(publicID string) (*data.Translation, error)
	SetTranslation(translation *data.Translation) error
}

type VerseService struct {
	translations data.TranslationModel
	verses       data.VerseModel
	cache        TranslationCache
	logger       *slog.Logger
}

func NewVerseService(
	translations data.TranslationModel,
	verses data.VerseModel,
	cache TranslationCache,
	logger *slog.Logger,
) *VerseService {
	return &VerseService{
		translations: translations,
		verses:       verses,
		cache:        cache,
		logger:       logger,
	}
}

// VerseQuery is one search or lookup request against a single translation.
type VerseQuery struct {
	TranslationID string
	Query         string
	Exact         bool

	// Highlight overrides the default of highlighting whenever a query is
	// present.
	Highlight *bool

	Reference reference.Params
	Filters   data.Filters
}

type BookRef struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

type VerseItem struct {
	Book    BookRef `json:"book"`
	Chapter int     `json:"chapter"`
	Verse   int     `json:"verse"`
	Text    string  `json:"text"`
}

type SearchResult struct {
	Verses   []*VerseItem
	Metadata data.Metadata
}

// Search resolves the reference constraints, compiles the text filter, and
// returns one page of matching verses in canonical order. All client input
// errors are detected before any store access.
func (s *VerseService) Search(q *VerseQuery) (*SearchResult, error) {
	// A whitespace-only query still counts as a supplied query; it degrades
	// to zero tokens and an empty result, not a missing-constraints error.
	hasQuery := q.Query != ""
	if !hasQuery && q.Reference.None() {
		return nil, ErrNoConstraints
	}

	refExpr, err := reference.Resolve(q.Reference)
	if err != nil {
		return nil, err
	}

	translation, err := s.lookupTranslation(q.TranslationID)
	if err != nil {
		return nil, err
	}

	var filter search.Filter
	if hasQuery {
		filter, err = search.Build(q.Query, q.Exact, translation.LanguageCode)
		if err != nil {
			return nil, err
		}
		if filter.Empty() {
			// Nothing left to match after tokenizing; skip the store.
			return &SearchResult{
				Verses:   []*VerseItem{},
				Metadata: emptyMetadata(q.Filters),
			}, nil
		}
	}

	cond := query.And(refExpr, filter.Expr())

	verses, metadata, err := s.verses.Query(translation.ID, cond, q.Filters)
	if err != nil {
		return nil, err
	}

	highlight := hasQuery
	if q.Highlight != nil {
		highlight = *q.Highlight && hasQuery
	}

	items := make([]*VerseItem, 0, len(verses))
	for _, v := range verses {
		text := v.Text
		if highlight {
			text = filter.Highlight(text)
		}
		items = append(items, &VerseItem{
			Book: BookRef{
				Key:         v.BookKey,
				DisplayName: books.DisplayName(v.BookKey, translation.LanguageCode),
			},
			Chapter: v.Chapter,
			Verse:   v.Verse,
			Text:    text,
		})
	}

	return &SearchResult{Verses: items, Metadata: metadata}, nil
}

// lookupTranslation resolves a public translation id through the cache first.
func (s *VerseService) lookupTranslation(publicID string) (*data.Translation, error) {
	if s.cache != nil {
		translation, err := s.cache.GetTranslation(publicID)
		if err != nil {
			s.logger.Error("translation cache read failed", "error", err)
		} else if translation != nil {
			return translation, nil
		}
	}

	translation, err := s.translations.GetByPublicID(publicID)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			return nil, ErrTranslationNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTranslation(translation); err != nil {
			s.logger.Error("translation cache write failed", "error", err)
		}
	}

	return translation, nil
}

func emptyMetadata(f data.Filters) data.Metadata {
	return data.Metadata{
		Page:        f.Page,
		PageSize:    f.PageSize,
		HasPrevious: f.Page > 1,
	}
}
