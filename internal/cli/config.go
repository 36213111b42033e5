package cli

import (
	stderrors "errors"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// Config holds the persistent defaults read from config.toml.
// Flags the user sets explicitly always win over these values.
type Config struct {
	Oriented   bool        `toml:"oriented"`
	NoContours bool        `toml:"no_contours"`
	Format     string      `toml:"format"`
	Detailed   bool        `toml:"detailed"`
	Cache      CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Enabled       bool   `toml:"enabled"`
	TTL           string `toml:"ttl"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

func defaultConfig() Config {
	return Config{
		Format: graph.FormatMatrix,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     cache.DefaultTTL.String(),
		},
	}
}

// loadConfig reads the config file at path over the defaults.
// With explicit false, a missing file is not an error and path may be empty.
// Keys the file sets that Config does not know are returned for a warning.
func loadConfig(path string, explicit bool) (Config, []string, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil, nil
		}
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, cfg.validate()
}

func (c Config) validate() error {
	if err := errors.ValidateFormat(c.Format, graph.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config format")
	}
	if _, err := c.Cache.ttl(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config cache.ttl %q", c.Cache.TTL)
	}
	return nil
}

// ttl parses the TTL; an empty value means the cache default.
func (c CacheConfig) ttl() (time.Duration, error) {
	if c.TTL == "" {
		return cache.DefaultTTL, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "ttl cannot be negative")
	}
	return d, nil
}
