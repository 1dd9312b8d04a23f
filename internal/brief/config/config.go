package config

import (
	"stock-news-brief/pkg/config"
)

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// YahooFinance holds the configuration for the Yahoo Finance API.
type YahooFinance struct {
	BaseURL             string `mapstructure:"base_url"`
	RSSBaseURL          string `mapstructure:"rss_base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// News holds news collection configuration.
type News struct {
	FetchArticleContent bool `mapstructure:"fetch_article_content"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the brief service.
type Config struct {
	App          config.App    `mapstructure:"app"`
	Logger       config.Logger `mapstructure:"logger"`
	API          config.API    `mapstructure:"api"`
	Gemini       Gemini        `mapstructure:"gemini"`
	YahooFinance YahooFinance  `mapstructure:"yahoo_finance"`
	News         News          `mapstructure:"news"`
	Telegram     Telegram      `mapstructure:"telegram"`
}

// Load loads the brief service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
