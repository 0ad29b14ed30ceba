package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

type Models struct {
	Translations TranslationModel
	Verses       VerseModel
}

func NewModels(db *sql.DB) Models {
	return Models{
		Translations: NewTranslationModel(db),
		Verses:       NewVerseModel(db),
	}
}
