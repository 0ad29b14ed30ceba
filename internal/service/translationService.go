package service

import (
	"errors"
	"log/slog"

	"mdobre/scriptura/internal/books"
	"mdobre/scriptura/internal/data"
)

type TranslationService struct {
	translations data.TranslationModel
	verses       data.VerseModel
	cache        TranslationCache
	logger       *slog.Logger
}

func NewTranslationService(
	translations data.TranslationModel,
	verses data.VerseModel,
	cache TranslationCache,
	logger *slog.Logger,
) *TranslationService {
	return &TranslationService{
		translations: translations,
		verses:       verses,
		cache:        cache,
		logger:       logger,
	}
}

func (s *TranslationService) List() ([]*data.Translation, error) {
	return s.translations.List()
}

type ChapterInfo struct {
	Chapter    int `json:"chapter"`
	VerseCount int `json:"verse_count"`
}

type BookMetadata struct {
	Book       BookRef       `json:"book"`
	Order      int           `json:"order"`
	Chapters   []ChapterInfo `json:"chapters"`
	VerseCount int           `json:"verse_count"`
}

// TranslationMetadata describes the shape of one ingested translation: which
// books it holds and how many verses each chapter has.
type TranslationMetadata struct {
	Translation   *data.Translation `json:"translation"`
	Books         []*BookMetadata   `json:"books"`
	TotalChapters int               `json:"total_chapters"`
	TotalVerses   int               `json:"total_verses"`
}

// Metadata assembles the chapter shape of the given translation. A
// translation with no ingested verses yields an empty book list.
func (s *TranslationService) Metadata(publicID string) (*TranslationMetadata, error) {
	translation, err := s.lookupTranslation(publicID)
	if err != nil {
		return nil, err
	}

	counts, err := s.verses.ChapterCounts(translation.ID)
	if err != nil && !errors.Is(err, data.ErrRecordNotFound) {
		return nil, err
	}

	metadata := &TranslationMetadata{
		Translation: translation,
		Books:       []*BookMetadata{},
	}

	var current *BookMetadata
	for _, c := range counts {
		if current == nil || current.Book.Key != c.BookKey {
			current = &BookMetadata{
				Book: BookRef{
					Key:         c.BookKey,
					DisplayName: books.DisplayName(c.BookKey, translation.LanguageCode),
				},
				Order: c.BookOrder,
			}
			metadata.Books = append(metadata.Books, current)
		}
		current.Chapters = append(current.Chapters, ChapterInfo{
			Chapter:    c.Chapter,
			VerseCount: c.VerseCount,
		})
		current.VerseCount += c.VerseCount
		metadata.TotalChapters++
		metadata.TotalVerses += c.VerseCount
	}

	return metadata, nil
}

func (s *TranslationService) lookupTranslation(publicID string) (*data.Translation, error) {
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
