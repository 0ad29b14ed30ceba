package data

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type TranslationModel interface {
	GetByPublicID(publicID string) (*Translation, error)
	List() ([]*Translation, error)
	Upsert(translation *Translation) error
}

type Translation struct {
	ID           int64  `json:"-"`
	PublicID     string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
	LanguageCode string `json:"language_code"`
	SourceURL    string `json:"source_url,omitzero"`
}

type translationModel struct {
	DB *sql.DB
}

func NewTranslationModel(db *sql.DB) *translationModel {
	return &translationModel{DB: db}
}

func (m *translationModel) GetByPublicID(publicID string) (*Translation, error) {
	query := `
		SELECT id, public_id, abbreviation, full_name, language_code, source_url
		FROM translations
		WHERE public_id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var t Translation
	err := m.DB.QueryRowContext(ctx, query, publicID).Scan(
		&t.ID,
		&t.PublicID,
		&t.Abbreviation,
		&t.FullName,
		&t.LanguageCode,
		&t.SourceURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &t, nil
}

func (m *translationModel) List() ([]*Translation, error) {
	query := `
		SELECT id, public_id, abbreviation, full_name, language_code, source_url
		FROM translations
		ORDER BY language_code, abbreviation`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	translations := []*Translation{}

	for rows.Next() {
		var t Translation
		err := rows.Scan(
			&t.ID,
			&t.PublicID,
			&t.Abbreviation,
			&t.FullName,
			&t.LanguageCode,
			&t.SourceURL,
		)
		if err != nil {
			return nil, err
		}
		translations = append(translations, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return translations, nil
}

// Upsert inserts the translation or refreshes its name and source URL if the
// (abbreviation, language_code) pair already exists. The stored id and
// public_id are written back to the struct, so a re-ingested translation
// keeps its published identifier.
func (m *translationModel) Upsert(translation *Translation) error {
	query := `
		INSERT INTO translations (public_id, abbreviation, full_name, language_code, source_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (abbreviation, language_code) DO UPDATE
		SET full_name = EXCLUDED.full_name, source_url = EXCLUDED.source_url
		RETURNING id, public_id`

	args := []any{
		translation.PublicID,
		translation.Abbreviation,
		translation.FullName,
		translation.LanguageCode,
		translation.SourceURL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.DB.QueryRowContext(ctx, query, args...).Scan(&translation.ID, &translation.PublicID)
}
