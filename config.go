package main

import (
	"os"
	"path/filepath"
)

const defaultQuoteAPI = "https://zenquotes.io/api/quotes"

type Config struct {
	DBPath      string
	QuoteAPIURL string
}

// LoadConfig builds the configuration from defaults and environment
// overrides. DAYBOOK_DB moves the database file, DAYBOOK_QUOTE_API points
// the quote client somewhere else.
func LoadConfig() Config {
	cfg := Config{
		DBPath:      filepath.Join(os.Getenv("HOME"), ".local", "share", "daybook", "daybook.db"),
		QuoteAPIURL: defaultQuoteAPI,
	}

	if path := os.Getenv("DAYBOOK_DB"); path != "" {
		cfg.DBPath = path
	}
	if url := os.Getenv("DAYBOOK_QUOTE_API"); url != "" {
		cfg.QuoteAPIURL = url
	}

	return cfg
}
