package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	// Credentials are the one thing we refuse to start without.
	for field, value := range map[string]string{
		"reddit.client_id":     c.Reddit.ClientID,
		"reddit.client_secret": c.Reddit.ClientSecret,
		"reddit.username":      c.Reddit.Username,
		"reddit.password":      c.Reddit.Password,
	} {
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s: required", field))
		} else if strings.HasPrefix(value, "${") {
			errs = append(errs, fmt.Sprintf("%s: unresolved environment variable %s", field, value))
		}
	}

	if len(c.Pairs) == 0 {
		errs = append(errs, "pairs: at least one feed pair must be configured")
	}
	for i, p := range c.Pairs {
		if p.Parody == "" {
			errs = append(errs, fmt.Sprintf("pairs[%d].parody: required", i))
		}
		if p.Source == "" {
			errs = append(errs, fmt.Sprintf("pairs[%d].source: required", i))
		}
		if p.Parody != "" && p.Parody == p.Source {
			errs = append(errs, fmt.Sprintf("pairs[%d]: parody and source must differ, both are %q", i, p.Parody))
		}
		if p.SimilarityThreshold <= 0 || p.SimilarityThreshold > 1 {
			errs = append(errs, fmt.Sprintf("pairs[%d].similarity_threshold: must be in (0, 1], got %v", i, p.SimilarityThreshold))
		}
		if p.CertaintyThreshold <= 0 || p.CertaintyThreshold > 1 {
			errs = append(errs, fmt.Sprintf("pairs[%d].certainty_threshold: must be in (0, 1], got %v", i, p.CertaintyThreshold))
		}
	}

	if c.Cleanup.Enabled && c.Cleanup.Interval <= 0 {
		errs = append(errs, fmt.Sprintf("cleanup.interval: must be positive, got %v", c.Cleanup.Interval))
	}

	return errs
}
