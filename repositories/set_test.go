package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"oakbot/domain"
	oakerrors "oakbot/errors"
)

var (
	pikachu = domain.Pokemon{ID: 25, Name: "Pikachu"}
	snorlax = domain.Pokemon{ID: 143, Name: "Snorlax"}
)

func newTestRepository(t *testing.T) *SetRepository {
	t.Helper()
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSetRepository(db, slog.Default())
}

func newSet(item string, moves ...string) domain.PokemonSet {
	return domain.PokemonSet{
		ID:        uuid.New(),
		Item:      item,
		Moves:     moves,
		CreatedAt: time.Now().UTC(),
	}
}

func Test_Append_And_Get_Round_Trip(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	set := newSet("light ball", "thunderbolt", "surf", "protect", "toxic")
	req.NoError(repo.Append("7", pikachu, set))

	record, err := repo.Get("7", pikachu)
	req.NoError(err)
	req.Equal("7", record.Owner)
	req.Equal(25, record.DexID)
	req.Equal("Pikachu", record.Pokemon)
	req.Len(record.Sets, 1)
	req.Equal(set.ID, record.Sets[0].ID)
	req.Equal("light ball", record.Sets[0].Item)
	req.Equal([]string{"thunderbolt", "surf", "protect", "toxic"}, record.Sets[0].Moves)
}

func Test_Get_Unknown_Record(t *testing.T) {
	repo := newTestRepository(t)
	_, err := repo.Get("7", pikachu)
	require.ErrorIs(t, err, badger.ErrKeyNotFound)
}

func Test_Records_Are_Isolated_Per_Owner(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	req.NoError(repo.Append("7", pikachu, newSet("light ball", "a", "b", "c", "d")))

	_, err := repo.Get("8", pikachu)
	req.ErrorIs(err, badger.ErrKeyNotFound)

	records, err := repo.ListOwner("8")
	req.NoError(err)
	req.Empty(records)
}

func Test_DeleteSet_Removes_Record_When_Last_Set_Goes(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	req.NoError(repo.Append("7", pikachu, newSet("light ball", "a", "b", "c", "d")))
	req.NoError(repo.Append("7", pikachu, newSet("magnet", "e", "f", "g", "h")))

	remaining, err := repo.DeleteSet("7", pikachu, 0)
	req.NoError(err)
	req.Len(remaining.Sets, 1)
	req.Equal("magnet", remaining.Sets[0].Item)

	remaining, err = repo.DeleteSet("7", pikachu, 0)
	req.NoError(err)
	req.Empty(remaining.Sets)

	// Deleting the last set drops the record entirely.
	_, err = repo.Get("7", pikachu)
	req.ErrorIs(err, badger.ErrKeyNotFound)
}

func Test_DeleteSet_Invalid_Index(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	req.NoError(repo.Append("7", pikachu, newSet("light ball", "a", "b", "c", "d")))

	_, err := repo.DeleteSet("7", pikachu, 5)
	req.ErrorIs(err, oakerrors.ErrInvalidSetIndex)
}

func Test_DeleteRecord(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	req.NoError(repo.Append("7", pikachu, newSet("light ball", "a", "b", "c", "d")))
	req.NoError(repo.DeleteRecord("7", pikachu))

	_, err := repo.Get("7", pikachu)
	req.ErrorIs(err, badger.ErrKeyNotFound)

	req.ErrorIs(repo.DeleteRecord("7", pikachu), badger.ErrKeyNotFound)
}

func Test_ListOwner_Returns_Dex_Order(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	// Inserted out of dex order on purpose.
	req.NoError(repo.Append("7", snorlax, newSet("leftovers", "a", "b", "c", "d")))
	req.NoError(repo.Append("7", pikachu, newSet("light ball", "a", "b", "c", "d")))

	records, err := repo.ListOwner("7")
	req.NoError(err)
	req.Len(records, 2)
	req.Equal("Pikachu", records[0].Pokemon)
	req.Equal("Snorlax", records[1].Pokemon)
}

func Test_PurgePokemon_Spans_Owners(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	req.NoError(repo.Append("7", pikachu, newSet("light ball", "a", "b", "c", "d")))
	req.NoError(repo.Append("8", pikachu, newSet("magnet", "e", "f", "g", "h")))
	req.NoError(repo.Append("7", snorlax, newSet("leftovers", "a", "b", "c", "d")))

	deleted, err := repo.PurgePokemon(pikachu.ID)
	req.NoError(err)
	req.Equal(2, deleted)

	_, err = repo.Get("7", pikachu)
	req.ErrorIs(err, badger.ErrKeyNotFound)
	_, err = repo.Get("8", pikachu)
	req.ErrorIs(err, badger.ErrKeyNotFound)

	// Unrelated records survive.
	_, err = repo.Get("7", snorlax)
	req.NoError(err)
}

func Test_PurgeAll_And_Stats(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	req.NoError(repo.Append("7", pikachu, newSet("light ball", "a", "b", "c", "d")))
	req.NoError(repo.Append("7", pikachu, newSet("magnet", "e", "f", "g", "h")))
	req.NoError(repo.Append("8", snorlax, newSet("leftovers", "a", "b", "c", "d")))

	records, sets, err := repo.Stats()
	req.NoError(err)
	req.Equal(2, records)
	req.Equal(3, sets)

	req.NoError(repo.PurgeAll())

	records, sets, err = repo.Stats()
	req.NoError(err)
	req.Zero(records)
	req.Zero(sets)
}
