package tradingdays

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jonwraymond/tradingdays/cache"
	"github.com/jonwraymond/tradingdays/calendar"
	"github.com/jonwraymond/tradingdays/exchange"
	"github.com/jonwraymond/tradingdays/observe"
)

// Environment variables read by LoadConfig.
const (
	EnvMinYear       = "TRADINGDAYS_MIN_YEAR"
	EnvMaxYear       = "TRADINGDAYS_MAX_YEAR"
	EnvCacheCapacity = "TRADINGDAYS_CACHE_CAPACITY"
)

// AutoCacheCapacity sizes the cache to hold every served exchange for every
// year of the window. TRADINGDAYS_CACHE_CAPACITY=auto selects it.
const AutoCacheCapacity = cache.AutoCapacity

// Config configures a Store.
type Config struct {
	// MinYear and MaxYear bound the queryable years, inclusive.
	MinYear int
	MaxYear int

	// CacheCapacity is the maximum number of cached (exchange, year) sets.
	// Zero disables caching and rebuilds on every query.
	CacheCapacity int
}

// DefaultConfig returns the full validated window with a cache that never
// evicts.
func DefaultConfig() Config {
	return Config{
		MinYear:       calendar.MinSupportedYear,
		MaxYear:       calendar.MaxSupportedYear,
		CacheCapacity: AutoCacheCapacity,
	}
}

// Window returns the configured year window.
func (c Config) Window() calendar.Window {
	return calendar.Window{Min: c.MinYear, Max: c.MaxYear}
}

// Validate checks the window and the cache capacity.
func (c Config) Validate() error {
	if err := c.Window().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := (cache.Policy{Capacity: c.CacheCapacity}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// cachePolicy returns the cache policy for a store serving calendars.
func (c Config) cachePolicy(calendars int) cache.Policy {
	return cache.Policy{Capacity: c.CacheCapacity}.Resolve(calendars * c.Window().Len())
}

// ObserveConfig returns telemetry settings describing a store built from c
// serving ids, or every built-in exchange when ids is empty.
func (c Config) ObserveConfig(serviceName string, ids ...exchange.ID) observe.Config {
	if len(ids) == 0 {
		ids = exchange.IDs()
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}

	cfg := observe.DefaultConfig()
	if serviceName != "" {
		cfg.ServiceName = serviceName
	}
	cfg.Exchanges = names
	cfg.MinYear = c.MinYear
	cfg.MaxYear = c.MaxYear
	return cfg
}

// LoadConfig returns DefaultConfig overridden by the TRADINGDAYS_*
// environment variables.
//
// The given dotenv files are loaded first; with none, ".env" in the working
// directory is tried. Missing files are ignored and variables already set in
// the environment win over file values.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: load env file: %w", ErrInvalidConfig, err)
	}

	cfg := DefaultConfig()
	var err error
	if cfg.MinYear, err = envInt(EnvMinYear, cfg.MinYear); err != nil {
		return Config{}, err
	}
	if cfg.MaxYear, err = envInt(EnvMaxYear, cfg.MaxYear); err != nil {
		return Config{}, err
	}
	if cfg.CacheCapacity, err = envCapacity(EnvCacheCapacity, cfg.CacheCapacity); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return n, nil
}

func envCapacity(key string, defaultValue int) (int, error) {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "auto") {
		return AutoCacheCapacity, nil
	}
	return envInt(key, defaultValue)
}
