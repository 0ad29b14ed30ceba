package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"mdobre/scriptura/internal/data"
	"mdobre/scriptura/internal/reference"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		return err
	}

	return nil
}

// readOptionalInt parses an optional positive integer query parameter. Zero
// means "not supplied".
func readOptionalInt(qs url.Values, key string) (int, error) {
	if !qs.Has(key) {
		return 0, nil
	}

	n, err := strconv.Atoi(qs.Get(key))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}

// readOptionalBool parses an optional boolean query parameter, returning nil
// when it is absent.
func readOptionalBool(qs url.Values, key string) (*bool, error) {
	if !qs.Has(key) {
		return nil, nil
	}

	b, err := strconv.ParseBool(qs.Get(key))
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean", key)
	}
	return &b, nil
}

func readBool(qs url.Values, key string) (bool, error) {
	b, err := readOptionalBool(qs, key)
	if err != nil || b == nil {
		return false, err
	}
	return *b, nil
}

// readReferenceParams collects the raw point and range reference parameters.
// Shape conflicts are left for the resolver to reject.
func readReferenceParams(qs url.Values) (reference.Params, error) {
	var p reference.Params
	var err error

	p.Book = qs.Get("book")
	p.FromBook = qs.Get("from_book")
	p.ToBook = qs.Get("to_book")

	ints := []struct {
		key string
		dst *int
	}{
		{"chapter", &p.Chapter},
		{"verse", &p.Verse},
		{"from_chapter", &p.FromChapter},
		{"from_verse", &p.FromVerse},
		{"to_chapter", &p.ToChapter},
		{"to_verse", &p.ToVerse},
	}
	for _, f := range ints {
		*f.dst, err = readOptionalInt(qs, f.key)
		if err != nil {
			return reference.Params{}, err
		}
	}

	return p, nil
}

func (app *application) readPaginationParams(r *http.Request) (data.Filters, error) {
	qs := r.URL.Query()

	filters := data.Filters{Page: 1, PageSize: 30}

	if qs.Has("page") {
		page, err := strconv.Atoi(qs.Get("page"))
		if err != nil {
			return data.Filters{}, fmt.Errorf("page must be an integer")
		}
		filters.Page = page
	}

	if qs.Has("page_size") {
		pageSize, err := strconv.Atoi(qs.Get("page_size"))
		if err != nil {
			return data.Filters{}, fmt.Errorf("page_size must be an integer")
		}
		filters.PageSize = pageSize
	}

	return filters, nil
}
