package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/skillgap"
)

const maxHistoryWindow = 20

// Config holds runtime settings for the skillpath binary.
type Config struct {
	DBPath        string
	LogUseCases   bool
	LogLevel      slog.Level
	HistoryWindow int
	// Windows overrides HistoryWindow per context kind.
	Windows map[domain.ContextKind]int
	NoColor bool
	// User is the default user ID for CLI commands.
	User string
}

// Default returns a Config with built-in defaults. DBPath is left empty and
// resolved by Load.
func Default() Config {
	return Config{
		LogLevel:      slog.LevelWarn,
		HistoryWindow: skillgap.DefaultWindow,
		Windows:       map[domain.ContextKind]int{},
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func Load() (Config, error) {
	cfg := Default()

	cfg.DBPath = os.Getenv("SKILLPATH_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".skillpath", "skillpath.db")
	}

	if v := os.Getenv("SKILLPATH_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKILLPATH_LOG_LEVEL"); v != "" {
		if lvl, ok := parseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("SKILLPATH_HISTORY_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HistoryWindow = clampWindow(n)
		}
	}
	if v := os.Getenv("SKILLPATH_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}

	cfg.User = os.Getenv("SKILLPATH_USER")
	if cfg.User == "" {
		cfg.User = os.Getenv("USER")
	}

	applyWindowEnv(&cfg, domain.ContextDaily, "SKILLPATH_DAILY_WINDOW")
	applyWindowEnv(&cfg, domain.ContextPractice, "SKILLPATH_PRACTICE_WINDOW")

	return cfg, nil
}

// WindowFor returns the history window for a context kind.
func (c Config) WindowFor(kind domain.ContextKind) int {
	if n, ok := c.Windows[kind]; ok && n > 0 {
		return n
	}
	if c.HistoryWindow > 0 {
		return c.HistoryWindow
	}
	return skillgap.DefaultWindow
}

func applyWindowEnv(cfg *Config, kind domain.ContextKind, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	cfg.Windows[kind] = clampWindow(n)
}

func clampWindow(n int) int {
	return max(1, min(maxHistoryWindow, n))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}
