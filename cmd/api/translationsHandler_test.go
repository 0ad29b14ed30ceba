package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"mdobre/scriptura/internal/data"
	"mdobre/scriptura/internal/service"
)

func TestTranslationHandler_List(t *testing.T) {
	mockService := &mockTranslationService{
		translations: []*data.Translation{
			{PublicID: "id-1", Abbreviation: "VDC", FullName: "Cornilescu", LanguageCode: "ro"},
			{PublicID: "id-2", Abbreviation: "KJV", FullName: "King James Version", LanguageCode: "en"},
		},
	}
	handler := NewTranslationHandler(testApp, mockService)

	req := httptest.NewRequest(http.MethodGet, "/v1/translations", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var response struct {
		Translations []data.Translation `json:"translations"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if len(response.Translations) != 2 {
		t.Fatalf("got %d translations, want 2", len(response.Translations))
	}
	if response.Translations[0].Abbreviation != "VDC" {
		t.Errorf("Abbreviation = %q, want %q", response.Translations[0].Abbreviation, "VDC")
	}
}

func TestTranslationHandler_Metadata(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"found", nil, http.StatusOK},
		{"not found", service.ErrTranslationNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockTranslationService{
				metadata: &service.TranslationMetadata{
					Translation: &data.Translation{PublicID: "id-1", LanguageCode: "ro"},
					Books: []*service.BookMetadata{
						{
							Book:     service.BookRef{Key: "genesis", DisplayName: "Geneza"},
							Order:    1,
							Chapters: []service.ChapterInfo{{Chapter: 1, VerseCount: 31}},
						},
					},
					TotalChapters: 1,
					TotalVerses:   31,
				},
				err: tt.serviceErr,
			}
			handler := NewTranslationHandler(testApp, mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/translations/id-1/metadata", nil)

			// the handler reads the :id path parameter via httprouter
			params := httprouter.Params{httprouter.Param{Key: "id", Value: "id-1"}}
			ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()

			handler.Metadata(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
			if rr.Code != http.StatusOK {
				return
			}

			var response struct {
				Metadata service.TranslationMetadata `json:"metadata"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response.Metadata.TotalVerses != 31 {
				t.Errorf("TotalVerses = %d, want 31", response.Metadata.TotalVerses)
			}
		})
	}
}
