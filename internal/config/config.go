package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/faqdesk/faqmatch/internal/match"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type CatalogConfig struct {
	Path string `toml:"path"`
}

type MatcherConfig struct {
	ConfidenceThreshold float64 `toml:"confidence_threshold"`
	PhraseWeight        float64 `toml:"phrase_weight"`
	KeywordWeight       float64 `toml:"keyword_weight"`
	MinQueryLength      int     `toml:"min_query_length"`
}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Matcher MatcherConfig `toml:"matcher"`
}

func Default() *Config {
	m := match.DefaultConfig()
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Catalog: CatalogConfig{Path: "testdata/faq.json"},
		Matcher: MatcherConfig{
			ConfidenceThreshold: m.ConfidenceThreshold,
			PhraseWeight:        m.PhraseWeight,
			KeywordWeight:       m.KeywordWeight,
			MinQueryLength:      m.MinQueryLength,
		},
	}
}

// Load reads a TOML config file, falling back to defaults when the
// file does not exist. Zero-valued matcher fields are filled from
// defaults so a partial file stays valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if cfg.Matcher.PhraseWeight == 0 && cfg.Matcher.KeywordWeight == 0 {
		d := Default()
		cfg.Matcher.PhraseWeight = d.Matcher.PhraseWeight
		cfg.Matcher.KeywordWeight = d.Matcher.KeywordWeight
	}
	if cfg.Matcher.MinQueryLength == 0 {
		cfg.Matcher.MinQueryLength = Default().Matcher.MinQueryLength
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when
// present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("MATCHER_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Matcher.ConfidenceThreshold = f
		}
	}
	if v := os.Getenv("MATCHER_PHRASE_WEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Matcher.PhraseWeight = f
		}
	}
	if v := os.Getenv("MATCHER_KEYWORD_WEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Matcher.KeywordWeight = f
		}
	}
	if v := os.Getenv("MATCHER_MIN_QUERY_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Matcher.MinQueryLength = n
		}
	}
}

// MatchConfig converts the file representation into the matcher's own
// config type; match.Config.Validate does the policy checks.
func (c *Config) MatchConfig() match.Config {
	return match.Config{
		ConfidenceThreshold: c.Matcher.ConfidenceThreshold,
		PhraseWeight:        c.Matcher.PhraseWeight,
		KeywordWeight:       c.Matcher.KeywordWeight,
		MinQueryLength:      c.Matcher.MinQueryLength,
	}
}
