package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"oakbot/domain"
	"oakbot/repositories"
)

var recordsDBPath string

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List every stored set record",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openReadOnly(recordsDBPath)
		if err != nil {
			return fmt.Errorf("opening record store: %w", err)
		}
		defer db.Close()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Key", "Owner", "Pokemon", "Sets", "Last Item"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")

		err = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()

			prefix := []byte(repositories.KeyPrefix)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				err := item.Value(func(v []byte) error {
					var record domain.SetRecord
					if err := json.Unmarshal(v, &record); err != nil {
						// Keep scanning: one corrupt value must not hide the rest.
						fmt.Fprintf(os.Stderr, "skipping corrupt key %s: %v\n", item.Key(), err)
						return nil
					}

					lastItem := ""
					if n := len(record.Sets); n > 0 {
						lastItem = record.Sets[n-1].Item
					}
					table.Append([]string{
						string(item.Key()),
						record.Owner,
						record.Pokemon,
						strconv.Itoa(len(record.Sets)),
						lastItem,
					})
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		table.Render()
		return nil
	},
}

// openReadOnly opens the store without disturbing a running bot.
func openReadOnly(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}

func init() {
	recordsCmd.Flags().StringVar(&recordsDBPath, "db", envOr("BADGER_FILEPATH", "data/badger"), "path to the record store")
	rootCmd.AddCommand(recordsCmd)
}
