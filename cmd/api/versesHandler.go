package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mdobre/scriptura/internal/books"
	"mdobre/scriptura/internal/reference"
	"mdobre/scriptura/internal/service"
	"mdobre/scriptura/internal/textnorm"
	"mdobre/scriptura/internal/validator"
)

type VerseServiceInterface interface {
	Search(q *service.VerseQuery) (*service.SearchResult, error)
}

type VerseHandler struct {
	app          *application
	verseService VerseServiceInterface
}

func NewVerseHandler(app *application, verseService VerseServiceInterface) *VerseHandler {
	return &VerseHandler{
		app:          app,
		verseService: verseService,
	}
}

func (h *VerseHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/verses", h.app.generalRateLimit(h.Search))
}

func (h *VerseHandler) handleVerseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNoConstraints),
		errors.Is(err, reference.ErrConflictingParams),
		errors.Is(err, reference.ErrMissingStartBook),
		errors.Is(err, books.ErrUnknownBook):
		h.app.badRequestResponse(w, r, err)
	case errors.Is(err, service.ErrTranslationNotFound):
		h.app.notFoundResponse(w, r)
	case errors.Is(err, textnorm.ErrUnsupportedLanguage):
		// A stored translation with no registered pipeline is a data defect.
		h.app.serverErrorResponse(w, r, err)
	default:
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Look up or search verses
// @Description Resolves a point or range scripture reference and/or a free-text query against one translation, returning a page of verses in canonical order with optional match highlighting.
// @Tags Verses, Search
// @Accept json
// @Produce json
// @Param translation query string true "Public translation id"
// @Param q query string false "Search query"
// @Param exact query bool false "Exact (display-form) matching instead of diacritic-folded matching"
// @Param highlight query bool false "Wrap matches in <mark> tags (defaults to true when q is present)"
// @Param book query string false "Point reference book key (e.g. 'john')"
// @Param chapter query int false "Point reference chapter"
// @Param verse query int false "Point reference verse"
// @Param from_book query string false "Range start book key"
// @Param from_chapter query int false "Range start chapter"
// @Param from_verse query int false "Range start verse"
// @Param to_book query string false "Range end book key"
// @Param to_chapter query int false "Range end chapter"
// @Param to_verse query int false "Range end verse"
// @Param page query int false "Page number" minimum(1)
// @Param page_size query int false "Results per page" minimum(1) maximum(1000)
// @Success 200 {object} object{verses=[]service.VerseItem,metadata=data.Metadata} "One page of matching verses"
// @Failure 400 {object} object{error=string} "Conflicting or missing constraints, or an unknown book key"
// @Failure 404 {object} object{error=string} "Translation not found"
// @Failure 422 {object} object{error=object} "Invalid pagination parameters"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /v1/verses [get]
func (h *VerseHandler) Search(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	translationID := qs.Get("translation")
	if translationID == "" {
		h.app.badRequestResponse(w, r, errors.New("query parameter 'translation' must be provided"))
		return
	}

	exact, err := readBool(qs, "exact")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	highlight, err := readOptionalBool(qs, "highlight")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	ref, err := readReferenceParams(qs)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	filters, err := h.app.readPaginationParams(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if filters.Validate(v); !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	result, err := h.verseService.Search(&service.VerseQuery{
		TranslationID: translationID,
		Query:         qs.Get("q"),
		Exact:         exact,
		Highlight:     highlight,
		Reference:     ref,
		Filters:       filters,
	})
	if err != nil {
		h.handleVerseError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"verses": result.Verses, "metadata": result.Metadata}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
