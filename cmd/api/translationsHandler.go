package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mdobre/scriptura/internal/data"
	"mdobre/scriptura/internal/service"
)

type TranslationServiceInterface interface {
	List() ([]*data.Translation, error)
	Metadata(publicID string) (*service.TranslationMetadata, error)
}

type TranslationHandler struct {
	app                *application
	translationService TranslationServiceInterface
}

func NewTranslationHandler(app *application, translationService TranslationServiceInterface) *TranslationHandler {
	return &TranslationHandler{
		app:                app,
		translationService: translationService,
	}
}

func (h *TranslationHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/translations", h.app.generalRateLimit(h.List))
	router.HandlerFunc(http.MethodGet, "/v1/translations/:id/metadata", h.app.generalRateLimit(h.Metadata))
}

// @Summary List available translations
// @Tags Translations
// @Produce json
// @Success 200 {object} object{translations=[]data.Translation} "All ingested translations"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /v1/translations [get]
func (h *TranslationHandler) List(w http.ResponseWriter, r *http.Request) {
	translations, err := h.translationService.List()
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"translations": translations}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a translation's chapter shape
// @Description Returns the books, chapters, and verse counts a translation actually holds, in canonical order.
// @Tags Translations
// @Produce json
// @Param id path string true "Public translation id"
// @Success 200 {object} service.TranslationMetadata "Translation shape"
// @Failure 404 {object} object{error=string} "Translation not found"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /v1/translations/{id}/metadata [get]
func (h *TranslationHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	publicID := params.ByName("id")

	metadata, err := h.translationService.Metadata(publicID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTranslationNotFound):
			h.app.notFoundResponse(w, r)
		default:
			h.app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"metadata": metadata}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
