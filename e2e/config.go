package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEX_FILE points at the national dex dataset the suite runs against
	DexFile string `envconfig:"E2E_DEX_FILE" default:"../dex/testdata/national_dex.json"`
	// E2E_SPRITE_DIR is where sprite paths from the dataset resolve
	SpriteDir string `envconfig:"E2E_SPRITE_DIR" default:"../dex/testdata"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
