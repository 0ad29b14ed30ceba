// Command load ingests a translation export into the database: it runs the
// schema migrations, normalizes every verse to its display and search forms,
// and swaps the translation's verse set in one transaction.
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"mdobre/scriptura/internal/books"
	"mdobre/scriptura/internal/data"
	"mdobre/scriptura/internal/textnorm"
)

// translationFile is the export format produced by the scraping tooling.
type translationFile struct {
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
	LanguageCode string `json:"language_code"`
	SourceURL    string `json:"source_url"`
	Verses       []struct {
		Book    string `json:"book"`
		Chapter int    `json:"chapter"`
		Verse   int    `json:"verse"`
		Text    string `json:"text"`
	} `json:"verses"`
}

func main() {
	var (
		dsn           = flag.String("db-dsn", "", "PostgreSQL DSN")
		file          = flag.String("file", "", "Translation JSON file to ingest")
		migrationsDir = flag.String("migrations", "./migrations", "Migrations directory")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *file == "" {
		logger.Error("the -file flag must be provided")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err = runMigrations(db, *migrationsDir); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	input, err := readTranslationFile(*file)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	// A language with no registered pipeline is a configuration defect and
	// must be caught here, before any verse is stored.
	if !textnorm.Supported(input.LanguageCode) {
		logger.Error("no normalization pipeline registered for language", "language", input.LanguageCode)
		os.Exit(1)
	}

	verses, err := prepareVerses(input)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	models := data.NewModels(db)

	translation := &data.Translation{
		PublicID:     uuid.NewString(),
		Abbreviation: input.Abbreviation,
		FullName:     input.FullName,
		LanguageCode: input.LanguageCode,
		SourceURL:    input.SourceURL,
	}
	if err = models.Translations.Upsert(translation); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err = models.Verses.Replace(translation.ID, verses); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	logger.Info("translation ingested",
		"abbreviation", translation.Abbreviation,
		"language", translation.LanguageCode,
		"id", translation.PublicID,
		"verses", len(verses),
	)
}

func readTranslationFile(path string) (*translationFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var input translationFile
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if input.Abbreviation == "" || input.LanguageCode == "" {
		return nil, fmt.Errorf("%s is missing an abbreviation or language code", path)
	}
	if len(input.Verses) == 0 {
		return nil, fmt.Errorf("%s contains no verses", path)
	}

	return &input, nil
}

// prepareVerses derives the canonical book order and both stored text forms
// for every verse. Any unknown book key or impossible coordinate aborts the
// whole ingest.
func prepareVerses(input *translationFile) ([]*data.Verse, error) {
	verses := make([]*data.Verse, 0, len(input.Verses))

	for i, v := range input.Verses {
		order, err := books.Order(v.Book)
		if err != nil {
			return nil, fmt.Errorf("verse %d: %q: %w", i, v.Book, err)
		}
		if v.Chapter < 1 || v.Verse < 1 {
			return nil, fmt.Errorf("verse %d: %s %d:%d is not a valid coordinate", i, v.Book, v.Chapter, v.Verse)
		}

		text, err := textnorm.Normalize(v.Text, input.LanguageCode)
		if err != nil {
			return nil, fmt.Errorf("verse %d: %w", i, err)
		}

		verses = append(verses, &data.Verse{
			BookKey:    v.Book,
			BookOrder:  order,
			Chapter:    v.Chapter,
			Verse:      v.Verse,
			Text:       text,
			TextSearch: textnorm.Fold(text),
		})
	}

	return verses, nil
}

func runMigrations(db *sql.DB, dir string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run up migrations: %w", err)
	}

	return nil
}
