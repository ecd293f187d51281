package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oakctl",
	Short: "Maintenance companion for the oakbot record store",
	Long: `Offline maintenance for the set record store.

Hash the admin password, inspect or purge stored records, and verify the
sprite assets referenced by the national dex file. Connection settings
come from flags, falling back to the same environment variables the bot
reads (.env is honored).`,
}

func main() {
	// .env is shared with the bot daemon.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// envOr returns the environment value or a fallback, for flag defaults.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
