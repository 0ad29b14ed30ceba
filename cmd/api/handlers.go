package main

import "mdobre/scriptura/internal/service"

// Handlers contains all HTTP methods
// This is specific to the HTTP API entry point
type Handlers struct {
	Verse       *VerseHandler
	Translation *TranslationHandler
}

// NewHandlers creates all HTTP handlers
// Handlers are tied to HTTP - not reusable like services
func NewHandlers(app *application, services *service.Service) *Handlers {
	return &Handlers{
		Verse:       NewVerseHandler(app, services.Verse),
		Translation: NewTranslationHandler(app, services.Translation),
	}
}
