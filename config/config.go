// Package config holds the settings shared by the gosentiment commands.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/naoina/toml"

	"github.com/deanrtaylor1/gosentiment/crossval"
	"github.com/deanrtaylor1/gosentiment/vocabulary"
)

type TrainConfig struct {
	MinOccur        int
	BigramMinOccur  int
	BigramThreshold int
	Bigrams         bool
	Stem            bool
	StemLanguage    string
}

type EvaluateConfig struct {
	Folds int
	// Seed 0 means seed from the clock
	Seed     int64
	Parallel bool
}

type ScrapeConfig struct {
	TLD        string
	Limit      int
	MaxRetries int
	RetryDelay string
}

type ServerConfig struct {
	Addr string
}

type PathsConfig struct {
	Stopwords string
	ModelDir  string
}

type Config struct {
	Train    TrainConfig
	Evaluate EvaluateConfig
	Scrape   ScrapeConfig
	Server   ServerConfig
	Paths    PathsConfig
}

func Default() *Config {
	return &Config{
		Train: TrainConfig{
			MinOccur:        vocabulary.DefaultMinOccur,
			BigramMinOccur:  vocabulary.DefaultBigramMinOccur,
			BigramThreshold: vocabulary.DefaultBigramThreshold,
			StemLanguage:    "english",
		},
		Evaluate: EvaluateConfig{
			Folds: crossval.DefaultFolds,
		},
		Scrape: ScrapeConfig{
			TLD:        "in",
			Limit:      10,
			MaxRetries: 5,
			RetryDelay: "1s",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Paths: PathsConfig{
			ModelDir: "models",
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg and validates the result
func Decode(r io.Reader, cfg *Config) error {
	if err := toml.NewDecoder(bufio.NewReader(r)).Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Dump writes cfg as TOML
func Dump(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func (c *Config) Validate() error {
	if c.Train.MinOccur < 1 || c.Train.BigramMinOccur < 1 {
		return errors.New("train: minimum occurrence must be at least 1")
	}
	if c.Train.BigramThreshold < 1 {
		return errors.New("train: bigram threshold must be at least 1")
	}
	if c.Evaluate.Folds < 2 {
		return fmt.Errorf("evaluate: need at least 2 folds, got %d", c.Evaluate.Folds)
	}
	if c.Scrape.Limit < 1 {
		return fmt.Errorf("scrape: limit must be positive, got %d", c.Scrape.Limit)
	}
	if _, err := c.RetryDelay(); err != nil {
		return fmt.Errorf("scrape: %w", err)
	}
	return nil
}

// RetryDelay parses Scrape.RetryDelay
func (c *Config) RetryDelay() (time.Duration, error) {
	return time.ParseDuration(c.Scrape.RetryDelay)
}

// MinOccur is the vocabulary threshold for the configured feature set
func (c *Config) MinOccur() int {
	if c.Train.Bigrams {
		return c.Train.BigramMinOccur
	}
	return c.Train.MinOccur
}
