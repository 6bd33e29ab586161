package main

import (
	"fmt"

	"github.com/at-ishikawa/langtalk/internal/config"
	"github.com/at-ishikawa/langtalk/internal/dictionary"
	"github.com/at-ishikawa/langtalk/internal/feedback"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newAnalyzer(cfg config.FeedbackConfig) (*feedback.Analyzer, error) {
	miningMode, err := feedback.ParseMiningMode(cfg.VocabularyMining)
	if err != nil {
		return nil, fmt.Errorf("feedback.ParseMiningMode > %w", err)
	}
	return feedback.NewAnalyzer(
		feedback.WithKeywords(feedback.NewKeywords(cfg.PositiveKeywords, cfg.NegativeKeywords)),
		feedback.WithMiningMode(miningMode),
	), nil
}

func newDictionaryReader(cfg config.RapidAPIConfig) *dictionary.Reader {
	return dictionary.NewReader(cfg.CacheDirectory, dictionary.Config{
		RapidAPIHost: cfg.Host,
		RapidAPIKey:  cfg.Key,
	})
}
