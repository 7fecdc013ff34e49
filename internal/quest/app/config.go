package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseFile    string        `env:"QUEST_DATABASE_FILE" envDefault:"quest.db"`
	Issuer          string        `env:"QUEST_ISSUER" envDefault:"questboard"`
	SessionTTL      time.Duration `env:"QUEST_SESSION_TTL" envDefault:"168h"`
	NumKeys         int           `env:"QUEST_NUM_KEYS" envDefault:"3"`
	RequireVerified bool          `env:"QUEST_REQUIRE_VERIFIED" envDefault:"false"`

	Retry RetryConfig `envPrefix:"QUEST_RETRY_"`

	ReconcileInterval time.Duration `env:"QUEST_RECONCILE_INTERVAL" envDefault:"5m"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// Unset variables keep the values from httpx.DefaultRateLimits.
	RateLimits httpx.RateLimits `envPrefix:"RATELIMIT_"`
}

type RetryConfig struct {
	MaxAttempts    int           `env:"MAX_ATTEMPTS" envDefault:"4"`
	BaseDelay      time.Duration `env:"BASE_DELAY" envDefault:"50ms"`
	MaxDelay       time.Duration `env:"MAX_DELAY" envDefault:"2s"`
	MaxJitter      time.Duration `env:"MAX_JITTER" envDefault:"50ms"`
	AttemptTimeout time.Duration `env:"ATTEMPT_TIMEOUT" envDefault:"2s"`
}

func (c RetryConfig) Policy() retryx.Policy {
	return retryx.Policy{
		MaxAttempts:    c.MaxAttempts,
		BaseDelay:      c.BaseDelay,
		MaxDelay:       c.MaxDelay,
		MaxJitter:      c.MaxJitter,
		AttemptTimeout: c.AttemptTimeout,
	}
}

// LoadConfig parses the process environment.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	cfg := Config{RateLimits: httpx.DefaultRateLimits()}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.DatabaseFile == "" {
		errs = append(errs, errors.New("QUEST_DATABASE_FILE must not be empty"))
	}
	if c.Issuer == "" {
		errs = append(errs, errors.New("QUEST_ISSUER must not be empty"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("QUEST_SESSION_TTL must be positive"))
	}
	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, errors.New("QUEST_RETRY_MAX_ATTEMPTS must be at least 1"))
	}
	if c.ReconcileInterval <= 0 {
		errs = append(errs, errors.New("QUEST_RECONCILE_INTERVAL must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	return errors.Join(errs...)
}
