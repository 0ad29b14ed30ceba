package service

import "errors"

// Service-level errors
var (
	ErrNoConstraints       = errors.New("either a search query or a reference constraint is required")
	ErrTranslationNotFound = errors.New("translation not found")
)
