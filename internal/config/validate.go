package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}
var logFormats = []string{"json", "text"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Pipeline.BatchSize <= 0 {
		return fmt.Errorf("pipeline.batch_size must be > 0 (got %d)", c.Pipeline.BatchSize)
	}
	if c.Pipeline.MaxArticles < 0 {
		return fmt.Errorf("pipeline.max_articles must be >= 0 (got %d)", c.Pipeline.MaxArticles)
	}

	level := strings.ToLower(c.Log.Level)
	if !slices.Contains(logLevels, level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	format := strings.ToLower(c.Log.Format)
	if !slices.Contains(logFormats, format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}
