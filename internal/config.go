package internal

import (
	"fmt"
	"time"
)

// Config holds every process-wide setting, read once at startup.
// There is no runtime reload.
type Config struct {
	BotToken          string        `env:"BOT_TOKEN,required=true"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	DexFilepath       string        `env:"DEX_FILEPATH,required=true"`
	SpriteDir         string        `env:"SPRITE_DIR,required=true"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH,required=true"`
	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=30m"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	PollTimeout       int           `env:"POLL_TIMEOUT_SECONDS,default=30"`
	RateLimitBurst    int           `env:"RATE_LIMIT_BURST,default=6"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW,default=15s"`
	CensoredWordsFile string        `env:"CENSORED_WORDS_FILE"`
	SuggestionCount   int           `env:"SUGGESTION_COUNT,default=3"`
	DebugMode         bool          `env:"DEBUG_MODE,default=false"`
}

// Validate catches values go-env cannot express as tag constraints.
func (c Config) Validate() error {
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	if len(c.AuthSecret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be at least 32 bytes, got %d", len(c.AuthSecret))
	}
	return nil
}
