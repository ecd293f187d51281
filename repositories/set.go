//go:generate go run go.uber.org/mock/mockgen -source=set.go -destination=../mocks/mock_set_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"oakbot/domain"
	oakerrors "oakbot/errors"
)

// KeyPrefix scopes every set record in the store. Keys are formatted as
// "set:{owner}:{dex id, 4-digit padded}" so that one prefix scan yields
// all records of an owner in dex order.
const KeyPrefix = "set:"

type ISetRepository interface {
	Append(owner string, pokemon domain.Pokemon, set domain.PokemonSet) error
	Get(owner string, pokemon domain.Pokemon) (domain.SetRecord, error)
	DeleteSet(owner string, pokemon domain.Pokemon, index int) (domain.SetRecord, error)
	DeleteRecord(owner string, pokemon domain.Pokemon) error
	ListOwner(owner string) ([]domain.SetRecord, error)
	PurgePokemon(dexID int) (int, error)
	PurgeAll() error
	Stats() (records int, sets int, err error)
}

type SetRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSetRepository(db *badger.DB, log *slog.Logger) *SetRepository {
	return &SetRepository{db: db, log: log}
}

func recordKey(owner string, dexID int) []byte {
	return []byte(fmt.Sprintf("%s%s:%04d", KeyPrefix, owner, dexID))
}

func ownerPrefix(owner string) []byte {
	return []byte(fmt.Sprintf("%s%s:", KeyPrefix, owner))
}

// Append adds one set to the owner's record for the given Pokemon,
// creating the record on first use. Read-modify-write runs inside a
// single Badger transaction.
func (r SetRepository) Append(owner string, pokemon domain.Pokemon, set domain.PokemonSet) error {
	key := recordKey(owner, pokemon.ID)
	err := r.db.Update(func(txn *badger.Txn) error {
		record, err := readRecord(txn, key)
		switch {
		case err == nil:
		case isNotFound(err):
			record = domain.SetRecord{Owner: owner, DexID: pokemon.ID, Pokemon: pokemon.Name}
		default:
			return err
		}
		record.Sets = append(record.Sets, set)
		return writeRecord(txn, key, record)
	})
	if err != nil {
		return fmt.Errorf("appending set for %s: %w", pokemon.Name, err)
	}
	r.log.Info("Stored new set", "owner", owner, "pokemon", pokemon.Name, "set_id", set.ID)
	return nil
}

// Get fetches the owner's record for one Pokemon.
// Returns badger.ErrKeyNotFound untouched; the service layer maps it.
func (r SetRepository) Get(owner string, pokemon domain.Pokemon) (domain.SetRecord, error) {
	var record domain.SetRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = readRecord(txn, recordKey(owner, pokemon.ID))
		return err
	})
	return record, err
}

// DeleteSet removes the set at the given zero-based index and returns the
// record as it stands after removal. Removing the last set deletes the
// record entirely, matching the no-soft-delete lifecycle.
func (r SetRepository) DeleteSet(owner string, pokemon domain.Pokemon, index int) (domain.SetRecord, error) {
	key := recordKey(owner, pokemon.ID)
	var remaining domain.SetRecord
	err := r.db.Update(func(txn *badger.Txn) error {
		record, err := readRecord(txn, key)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(record.Sets) {
			return fmt.Errorf("index %d out of range for %d sets: %w", index, len(record.Sets), oakerrors.ErrInvalidSetIndex)
		}
		record.Sets = append(record.Sets[:index], record.Sets[index+1:]...)
		remaining = record
		if len(record.Sets) == 0 {
			return txn.Delete(key)
		}
		return writeRecord(txn, key, record)
	})
	if err != nil {
		return domain.SetRecord{}, err
	}
	r.log.Info("Deleted set", "owner", owner, "pokemon", pokemon.Name, "index", index)
	return remaining, nil
}

// DeleteRecord drops the whole record for (owner, pokemon).
func (r SetRepository) DeleteRecord(owner string, pokemon domain.Pokemon) error {
	key := recordKey(owner, pokemon.ID)
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		return err
	}
	r.log.Info("Deleted record", "owner", owner, "pokemon", pokemon.Name)
	return nil
}

// ListOwner scans the owner's keyspace; records come back in dex order
// thanks to the padded id in the key.
func (r SetRepository) ListOwner(owner string) ([]domain.SetRecord, error) {
	var records []domain.SetRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := ownerPrefix(owner)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record domain.SetRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return fmt.Errorf("corrupt record at %s: %w", it.Item().Key(), err)
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// PurgePokemon removes the given Pokemon's records across every owner
// and reports how many were dropped. Admin maintenance only.
func (r SetRepository) PurgePokemon(dexID int) (int, error) {
	suffix := fmt.Sprintf(":%04d", dexID)
	deleted := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(KeyPrefix)
		var doomed [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			if strings.HasSuffix(string(key), suffix) {
				doomed = append(doomed, key)
			}
		}
		for _, key := range doomed {
			if err := txn.Delete(key); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("purging dex id %d: %w", dexID, err)
	}
	r.log.Info("Purged pokemon records", "dex_id", dexID, "deleted", deleted)
	return deleted, nil
}

// PurgeAll wipes the whole set keyspace.
func (r SetRepository) PurgeAll() error {
	if err := r.db.DropPrefix([]byte(KeyPrefix)); err != nil {
		return fmt.Errorf("purging all records: %w", err)
	}
	r.log.Warn("Purged all set records")
	return nil
}

// Stats counts records and stored sets, for the admin status report.
func (r SetRepository) Stats() (int, int, error) {
	records, sets := 0, 0
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(KeyPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record domain.SetRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records++
				sets += len(record.Sets)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return records, sets, nil
}

func readRecord(txn *badger.Txn, key []byte) (domain.SetRecord, error) {
	item, err := txn.Get(key)
	if err != nil {
		return domain.SetRecord{}, err
	}
	var record domain.SetRecord
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	})
	return record, err
}

func writeRecord(txn *badger.Txn, key []byte, record domain.SetRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

func isNotFound(err error) bool {
	return errors.Is(err, badger.ErrKeyNotFound)
}
