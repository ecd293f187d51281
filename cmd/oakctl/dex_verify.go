package main

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"oakbot/dex"
)

var (
	dexFilePath  string
	dexSpriteDir string
)

var dexCmd = &cobra.Command{
	Use:   "dex",
	Short: "Reference dataset checks",
}

var dexVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every dex entry has a readable PNG sprite",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := dex.Load(dexFilePath, dexSpriteDir)
		if err != nil {
			return fmt.Errorf("loading reference dataset: %w", err)
		}

		missing, wrongType := 0, 0
		for _, name := range registry.Names() {
			pokemon, _ := registry.Lookup(name)
			mt, err := mimetype.DetectFile(pokemon.SpritePath)
			switch {
			case err != nil:
				missing++
				color.Warn.Printf("missing sprite for %s: %s\n", pokemon.Name, pokemon.SpritePath)
			case !mt.Is("image/png"):
				wrongType++
				color.Warn.Printf("sprite for %s is %s, want image/png\n", pokemon.Name, mt.String())
			}
		}

		if missing+wrongType > 0 {
			color.Error.Printf("%d entries checked: %d missing, %d wrong type\n",
				registry.Len(), missing, wrongType)
			return fmt.Errorf("sprite verification failed")
		}
		color.Success.Printf("%d entries checked, all sprites are valid PNGs\n", registry.Len())
		return nil
	},
}

func init() {
	dexVerifyCmd.Flags().StringVar(&dexFilePath, "dex", envOr("DEX_FILEPATH", "data/national_dex.json"), "path to the national dex file")
	dexVerifyCmd.Flags().StringVar(&dexSpriteDir, "sprites", envOr("SPRITE_DIR", "."), "base directory for sprite paths")
	dexCmd.AddCommand(dexVerifyCmd)
	rootCmd.AddCommand(dexCmd)
}
