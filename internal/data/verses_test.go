package data

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"mdobre/scriptura/internal/books"
	"mdobre/scriptura/internal/query"
	"mdobre/scriptura/internal/reference"
	"mdobre/scriptura/internal/textnorm"
)

type seedVerse struct {
	book    string
	chapter int
	verse   int
	text    string
}

func insertTestTranslation(t *testing.T, m Models, lang string) *Translation {
	t.Helper()

	translation := &Translation{
		PublicID:     uuid.NewString(),
		Abbreviation: "TST-" + uuid.NewString()[:8],
		FullName:     "Test Translation",
		LanguageCode: lang,
	}
	if err := m.Translations.Upsert(translation); err != nil {
		t.Fatalf("failed to insert test translation: %v", err)
	}

	t.Cleanup(func() {
		testDB.Exec(`DELETE FROM translations WHERE id = $1`, translation.ID)
	})

	return translation
}

func insertTestVerses(t *testing.T, m Models, translationID int64, seed []seedVerse) {
	t.Helper()

	verses := make([]*Verse, 0, len(seed))
	for _, s := range seed {
		order, err := books.Order(s.book)
		if err != nil {
			t.Fatalf("bad seed book %q: %v", s.book, err)
		}
		verses = append(verses, &Verse{
			BookKey:    s.book,
			BookOrder:  order,
			Chapter:    s.chapter,
			Verse:      s.verse,
			Text:       s.text,
			TextSearch: textnorm.Fold(s.text),
		})
	}

	if err := m.Verses.Replace(translationID, verses); err != nil {
		t.Fatalf("failed to insert test verses: %v", err)
	}
}

func TestQueryVerseRange(t *testing.T) {
	m := NewModels(testDB)
	translation := insertTestTranslation(t, m, "en")

	insertTestVerses(t, m, translation.ID, []seedVerse{
		{"john", 3, 15, "that everyone who believes may have eternal life in him."},
		{"john", 3, 16, "For God so loved the world."},
		{"john", 3, 17, "For God did not send his Son to condemn the world."},
		{"john", 3, 18, "Whoever believes in him is not condemned."},
		{"john", 3, 19, "This is the verdict."},
	})

	cond, err := reference.Resolve(reference.Params{
		FromBook: "john", FromChapter: 3, FromVerse: 16,
		ToChapter: 3, ToVerse: 18,
	})
	if err != nil {
		t.Fatalf("Resolve returned an error: %v", err)
	}

	verses, metadata, err := m.Verses.Query(translation.ID, cond, Filters{Page: 1, PageSize: 30})
	if err != nil {
		t.Fatalf("Query returned an error: %v", err)
	}

	if len(verses) != 3 {
		t.Fatalf("got %d verses, want 3", len(verses))
	}
	for i, want := range []int{16, 17, 18} {
		if verses[i].Verse != want {
			t.Errorf("verses[%d].Verse = %d, want %d", i, verses[i].Verse, want)
		}
	}
	if metadata.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", metadata.TotalItems)
	}
}

func TestQueryCrossBookOrdering(t *testing.T) {
	m := NewModels(testDB)
	translation := insertTestTranslation(t, m, "en")

	// Inserted out of canonical order on purpose.
	insertTestVerses(t, m, translation.ID, []seedVerse{
		{"acts", 1, 5, "For John baptized with water."},
		{"john", 21, 25, "Jesus did many other things as well."},
		{"acts", 1, 1, "In my former book, Theophilus."},
		{"acts", 1, 6, "Then they gathered around him."},
		{"john", 21, 24, "This is the disciple who testifies."},
	})

	cond, err := reference.Resolve(reference.Params{
		FromBook: "john", FromChapter: 21, FromVerse: 25,
		ToBook: "acts", ToChapter: 1, ToVerse: 5,
	})
	if err != nil {
		t.Fatalf("Resolve returned an error: %v", err)
	}

	verses, _, err := m.Verses.Query(translation.ID, cond, Filters{Page: 1, PageSize: 30})
	if err != nil {
		t.Fatalf("Query returned an error: %v", err)
	}

	want := []struct {
		book  string
		verse int
	}{
		{"john", 25},
		{"acts", 1},
		{"acts", 5},
	}
	if len(verses) != len(want) {
		t.Fatalf("got %d verses, want %d", len(verses), len(want))
	}
	for i, w := range want {
		if verses[i].BookKey != w.book || verses[i].Verse != w.verse {
			t.Errorf("verses[%d] = %s %d:%d, want %s ?:%d",
				i, verses[i].BookKey, verses[i].Chapter, verses[i].Verse, w.book, w.verse)
		}
	}
}

func TestQueryFoldedSearch(t *testing.T) {
	m := NewModels(testDB)
	translation := insertTestTranslation(t, m, "ro")

	insertTestVerses(t, m, translation.ID, []seedVerse{
		{"1john", 4, 8, "Dumnezeu este dragoste."},
		{"1john", 4, 18, "Dragostea desăvârșită alungă frica."},
		{"john", 1, 1, "La început era Cuvântul."},
	})

	cond := query.ContainsFold(query.FieldTextSearch, "dragoste")

	verses, metadata, err := m.Verses.Query(translation.ID, cond, Filters{Page: 1, PageSize: 30})
	if err != nil {
		t.Fatalf("Query returned an error: %v", err)
	}

	// Matches both the bare and the capitalized diacritic-free forms.
	if metadata.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", metadata.TotalItems)
	}
	for _, v := range verses {
		if v.BookKey != "1john" {
			t.Errorf("unexpected match in %s %d:%d", v.BookKey, v.Chapter, v.Verse)
		}
	}
}

func TestQueryPagination(t *testing.T) {
	m := NewModels(testDB)
	translation := insertTestTranslation(t, m, "en")

	seed := make([]seedVerse, 0, 7)
	for v := 1; v <= 7; v++ {
		seed = append(seed, seedVerse{"psalms", 117, v, "Praise the Lord."})
	}
	insertTestVerses(t, m, translation.ID, seed)

	cond, err := reference.Resolve(reference.Params{Book: "psalms", Chapter: 117})
	if err != nil {
		t.Fatalf("Resolve returned an error: %v", err)
	}

	verses, metadata, err := m.Verses.Query(translation.ID, cond, Filters{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("Query returned an error: %v", err)
	}
	if len(verses) != 3 {
		t.Fatalf("page 2 returned %d verses, want 3", len(verses))
	}
	if verses[0].Verse != 4 {
		t.Errorf("page 2 starts at verse %d, want 4", verses[0].Verse)
	}
	if metadata.TotalPages != 3 || !metadata.HasPrevious || !metadata.HasNext {
		t.Errorf("unexpected metadata %+v", metadata)
	}

	// A page past the end is empty, not an error.
	verses, metadata, err = m.Verses.Query(translation.ID, cond, Filters{Page: 5, PageSize: 3})
	if err != nil {
		t.Fatalf("Query returned an error: %v", err)
	}
	if len(verses) != 0 {
		t.Errorf("page past the end returned %d verses, want 0", len(verses))
	}
	if metadata.HasNext {
		t.Error("HasNext = true for a page past the end")
	}
}

func TestChapterCounts(t *testing.T) {
	m := NewModels(testDB)
	translation := insertTestTranslation(t, m, "en")

	insertTestVerses(t, m, translation.ID, []seedVerse{
		{"genesis", 1, 1, "In the beginning."},
		{"genesis", 1, 2, "Now the earth was formless."},
		{"genesis", 2, 1, "Thus the heavens were completed."},
		{"exodus", 1, 1, "These are the names."},
	})

	counts, err := m.Verses.ChapterCounts(translation.ID)
	if err != nil {
		t.Fatalf("ChapterCounts returned an error: %v", err)
	}

	want := []ChapterCount{
		{BookKey: "genesis", BookOrder: 1, Chapter: 1, VerseCount: 2},
		{BookKey: "genesis", BookOrder: 1, Chapter: 2, VerseCount: 1},
		{BookKey: "exodus", BookOrder: 2, Chapter: 1, VerseCount: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("got %d rows, want %d", len(counts), len(want))
	}
	for i, w := range want {
		if *counts[i] != w {
			t.Errorf("counts[%d] = %+v, want %+v", i, *counts[i], w)
		}
	}
}

func TestUpsertKeepsPublicID(t *testing.T) {
	m := NewModels(testDB)
	translation := insertTestTranslation(t, m, "ro")

	again := &Translation{
		PublicID:     uuid.NewString(),
		Abbreviation: translation.Abbreviation,
		FullName:     "Renamed Translation",
		LanguageCode: translation.LanguageCode,
	}
	if err := m.Translations.Upsert(again); err != nil {
		t.Fatalf("Upsert returned an error: %v", err)
	}

	if again.ID != translation.ID {
		t.Errorf("re-upsert created a new row: id %d != %d", again.ID, translation.ID)
	}
	if again.PublicID != translation.PublicID {
		t.Errorf("re-upsert changed the public id: %s != %s", again.PublicID, translation.PublicID)
	}

	got, err := m.Translations.GetByPublicID(translation.PublicID)
	if err != nil {
		t.Fatalf("GetByPublicID returned an error: %v", err)
	}
	if got.FullName != "Renamed Translation" {
		t.Errorf("FullName = %q, want %q", got.FullName, "Renamed Translation")
	}
}

func TestGetByPublicIDNotFound(t *testing.T) {
	m := NewModels(testDB)

	_, err := m.Translations.GetByPublicID(uuid.NewString())
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("GetByPublicID error = %v, want ErrRecordNotFound", err)
	}
}
