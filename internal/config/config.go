// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Default decision thresholds. Pairs may override both.
const (
	DefaultSimilarityThreshold = 0.40
	DefaultCertaintyThreshold  = 0.50
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Reddit   RedditConfig  `toml:"reddit"`
	Store    StoreConfig   `toml:"store"`
	Cleanup  CleanupConfig `toml:"cleanup"`
	Pairs    []PairConfig  `toml:"pairs"`
}

// RedditConfig holds the script-app credentials. Values are usually
// supplied as ${ENV_VAR} references.
type RedditConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	UserAgent    string `toml:"user_agent"`
}

// StoreConfig locates the cross-reference database.
type StoreConfig struct {
	Path string `toml:"path"`
}

// CleanupConfig controls the worker that deletes the bot's own
// downvoted comments.
type CleanupConfig struct {
	Enabled  bool          `toml:"enabled"`
	Interval time.Duration `toml:"interval"`
	MinScore int           `toml:"min_score"`
}

// PairConfig configures one parody/source feed pair.
type PairConfig struct {
	Parody string `toml:"parody"`
	Source string `toml:"source"`

	// Quiet computes and logs decisions but never posts.
	Quiet bool `toml:"quiet"`

	// ReconcileSource maintains the aggregate comment on matched
	// source posts. Defaults to true.
	ReconcileSource *bool `toml:"reconcile_source"`

	// MatchSameAuthor allows matching two posts by the same author.
	// Defaults to false: same-author pairs are usually self-crossposts.
	MatchSameAuthor bool `toml:"match_same_author"`

	SimilarityThreshold float64 `toml:"similarity_threshold"`
	CertaintyThreshold  float64 `toml:"certainty_threshold"`
}

// ReconcileEnabled reports whether the pair maintains the source-post
// aggregate comment.
func (p PairConfig) ReconcileEnabled() bool {
	return p.ReconcileSource == nil || *p.ReconcileSource
}

// Name identifies the pair in logs.
func (p PairConfig) Name() string {
	return p.Parody + "/" + p.Source
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Reddit.UserAgent == "" {
		cfg.Reddit.UserAgent = "parrot"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "./data/parrot.db"
	}
	if cfg.Cleanup.Interval == 0 {
		cfg.Cleanup.Interval = 15 * time.Minute
	}
	for i := range cfg.Pairs {
		if cfg.Pairs[i].SimilarityThreshold == 0 {
			cfg.Pairs[i].SimilarityThreshold = DefaultSimilarityThreshold
		}
		if cfg.Pairs[i].CertaintyThreshold == 0 {
			cfg.Pairs[i].CertaintyThreshold = DefaultCertaintyThreshold
		}
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unresolved for validation to catch
	})
}
