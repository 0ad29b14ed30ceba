package service

import (
	"log/slog"

	"mdobre/scriptura/internal/data"
)

// Service contains all business logic services
type Service struct {
	Verse       *VerseService
	Translation *TranslationService
}

// NewServices creates all services with their dependencies
// Centralize service creation
func NewServices(
	models data.Models,
	logger *slog.Logger,
	cache TranslationCache,
) *Service {
	return &Service{
		Verse: NewVerseService(
			models.Translations,
			models.Verses,
			cache,
			logger,
		),
		Translation: NewTranslationService(
			models.Translations,
			models.Verses,
			cache,
			logger,
		),
	}
}
