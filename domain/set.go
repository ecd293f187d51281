package domain

import (
	"time"

	"github.com/google/uuid"
)

// PokemonSet is a single user-submitted moveset: one held item and
// exactly four moves. Free text, screened but not checked against any
// move list.
type PokemonSet struct {
	ID        uuid.UUID `json:"id"`
	Item      string    `json:"item"`
	Moves     []string  `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
}

// SetRecord is the persisted entity: all sets one owner stored for one
// Pokemon. Keyed by (owner, dex id) in the record store; deleting the
// last set deletes the record.
type SetRecord struct {
	Owner   string       `json:"owner"`
	DexID   int          `json:"dex_id"`
	Pokemon string       `json:"pokemon"`
	Sets    []PokemonSet `json:"sets"`
}

// StoreSetCommand carries a validated submission towards the service layer.
type StoreSetCommand struct {
	Owner   string
	Pokemon string
	Item    string   `validate:"required,max=64"`
	Moves   []string `validate:"required,len=4,dive,required,max=64"`
}

// DeleteSetCommand removes one set by its 1-based position, or the whole
// record when Index is nil.
type DeleteSetCommand struct {
	Owner   string
	Pokemon string
	Index   *int
}
