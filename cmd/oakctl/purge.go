package main

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"

	"oakbot/repositories"
)

var (
	purgeDBPath  string
	purgeConfirm bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Wipe every stored set record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !purgeConfirm {
			return fmt.Errorf("refusing to purge without --yes")
		}

		opts := badger.DefaultOptions(purgeDBPath).
			WithLoggingLevel(badger.WARNING)
		db, err := badger.Open(opts)
		if err != nil {
			return fmt.Errorf("opening record store: %w", err)
		}
		defer db.Close()

		repository := repositories.NewSetRepository(db, slog.Default())
		if err := repository.PurgeAll(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Record store purged.")
		return nil
	},
}

func init() {
	purgeCmd.Flags().StringVar(&purgeDBPath, "db", envOr("BADGER_FILEPATH", "data/badger"), "path to the record store")
	purgeCmd.Flags().BoolVar(&purgeConfirm, "yes", false, "confirm the purge")
	rootCmd.AddCommand(purgeCmd)
}
