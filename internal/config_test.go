package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		BotToken:          "123:abc",
		BadgerFilepath:    "data/badger",
		DexFilepath:       "data/national_dex.json",
		SpriteDir:         "data",
		AdminPasswordHash: "$argon2id$...",
		AuthSecret:        "0123456789abcdef0123456789abcdef",
		AuthTokenDuration: 30 * time.Minute,
		PollTimeout:       30,
		RateLimitBurst:    6,
		RateLimitWindow:   15 * time.Second,
		SuggestionCount:   3,
	}
}

func Test_Config_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func Test_Config_Validate_Rejects_Bad_Values(t *testing.T) {
	req := require.New(t)

	cfg := validConfig()
	cfg.RateLimitBurst = 0
	req.ErrorContains(cfg.Validate(), "RATE_LIMIT_BURST")

	cfg = validConfig()
	cfg.RateLimitWindow = 0
	req.ErrorContains(cfg.Validate(), "RATE_LIMIT_WINDOW")

	cfg = validConfig()
	cfg.AuthSecret = "too-short"
	req.ErrorContains(cfg.Validate(), "AUTH_SECRET")
}
