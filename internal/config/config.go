package config

import (
	"os"
	"strconv"
)

type Config struct {
	StashFile         string
	PatternsFile      string
	TaxonomyFile      string // пусто — встроенные таблицы
	OutFile           string // пусто — stdout
	Workers           int
	StashHeaderRow    int
	PatternsHeaderRow int
	LogLevel          string
	LogFile           string
}

func Load() Config {
	return Config{
		StashFile:         getenv("STASH_FILE", "stash.csv"),
		PatternsFile:      getenv("PATTERNS_FILE", "patterns.csv"),
		TaxonomyFile:      getenv("TAXONOMY_FILE", ""),
		OutFile:           getenv("OUT_FILE", ""),
		Workers:           getint("WORKERS", 0), // 0 — по числу CPU
		StashHeaderRow:    getint("STASH_HEADER_ROW", 1),
		PatternsHeaderRow: getint("PATTERNS_HEADER_ROW", 1),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFile:           getenv("LOG_FILE", "logs/stitchmatch.log"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
