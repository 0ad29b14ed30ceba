package main

import (
	"log/slog"
	"time"

	"mdobre/scriptura/internal/cache"
	"mdobre/scriptura/internal/data"
)

// backgroundTasks keeps the translation cache warm so the common lookup path
// rarely touches the database.
type backgroundTasks struct {
	translationModel data.TranslationModel
	redis            *cache.RedisClient
	logger           *slog.Logger
}

func newBackgroundTasks(
	translationModel data.TranslationModel,
	redis *cache.RedisClient,
	logger *slog.Logger,
) *backgroundTasks {
	return &backgroundTasks{
		translationModel: translationModel,
		redis:            redis,
		logger:           logger,
	}
}

func (bt *backgroundTasks) start() {
	defer func() {
		if pv := recover(); pv != nil {
			bt.logger.Error("background task panic", "panic", pv)
		}
	}()

	bt.warmTranslationCache()

	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		bt.warmTranslationCache()
	}
}

func (bt *backgroundTasks) warmTranslationCache() {
	translations, err := bt.translationModel.List()
	if err != nil {
		bt.logger.Error("failed to list translations for cache warmup", "error", err)
		return
	}

	for _, t := range translations {
		if err := bt.redis.SetTranslation(t); err != nil {
			bt.logger.Error("failed to warm translation cache", "translation", t.Abbreviation, "error", err)
			return
		}
	}
}
