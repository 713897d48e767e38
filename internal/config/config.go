package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server ServerConfig
	Bot    BotConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	bot, err := loadBotConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Bot: bot}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// BotConfig tunes the response engine and its search scoring.
type BotConfig struct {
	// HistoryWindow caps the recent messages handed to the engine per turn.
	HistoryWindow int
	// SearchLimit caps catalog matches combined into one answer.
	SearchLimit int
	// MaxQuickReplies caps suggestions on a combined answer.
	MaxQuickReplies int
	// Search weights; the defaults are hand-tuned so tag hits dominate
	// incidental title or category mentions.
	TagWeight      float64
	TitleWeight    float64
	CategoryWeight float64
}

func loadBotConfig() (BotConfig, error) {
	cfg := BotConfig{
		HistoryWindow:   10,
		SearchLimit:     2,
		MaxQuickReplies: 4,
		TagWeight:       2,
		TitleWeight:     1.5,
		CategoryWeight:  1,
	}

	var err error
	if cfg.HistoryWindow, err = intEnv("BOT_HISTORY_WINDOW", cfg.HistoryWindow); err != nil {
		return BotConfig{}, err
	}
	if cfg.SearchLimit, err = intEnv("BOT_SEARCH_LIMIT", cfg.SearchLimit); err != nil {
		return BotConfig{}, err
	}
	if cfg.MaxQuickReplies, err = intEnv("BOT_MAX_QUICK_REPLIES", cfg.MaxQuickReplies); err != nil {
		return BotConfig{}, err
	}
	if cfg.TagWeight, err = floatEnv("BOT_TAG_WEIGHT", cfg.TagWeight); err != nil {
		return BotConfig{}, err
	}
	if cfg.TitleWeight, err = floatEnv("BOT_TITLE_WEIGHT", cfg.TitleWeight); err != nil {
		return BotConfig{}, err
	}
	if cfg.CategoryWeight, err = floatEnv("BOT_CATEGORY_WEIGHT", cfg.CategoryWeight); err != nil {
		return BotConfig{}, err
	}

	if cfg.HistoryWindow <= 0 {
		return BotConfig{}, fmt.Errorf("BOT_HISTORY_WINDOW must be positive, got %d", cfg.HistoryWindow)
	}
	if cfg.SearchLimit <= 0 {
		return BotConfig{}, fmt.Errorf("BOT_SEARCH_LIMIT must be positive, got %d", cfg.SearchLimit)
	}
	if cfg.MaxQuickReplies <= 0 {
		return BotConfig{}, fmt.Errorf("BOT_MAX_QUICK_REPLIES must be positive, got %d", cfg.MaxQuickReplies)
	}

	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return value, nil
}

func floatEnv(name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return value, nil
}
