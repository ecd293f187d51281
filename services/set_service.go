package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"oakbot/dex"
	"oakbot/domain"
	oakerrors "oakbot/errors"
	"oakbot/moderation"
	"oakbot/repositories"
)

//go:generate go run go.uber.org/mock/mockgen -source=set_service.go -destination=../mocks/mock_set_service.go -package=mocks

var validate = validator.New()

type ISetService interface {
	StoreSet(ctx context.Context, cmd domain.StoreSetCommand) (domain.Pokemon, domain.PokemonSet, error)
	GetSets(ctx context.Context, owner, pokemon string) (domain.Pokemon, domain.SetRecord, error)
	DeleteSet(ctx context.Context, cmd domain.DeleteSetCommand) (domain.Pokemon, int, error)
	ListOwner(owner string) ([]domain.SetRecord, error)
	LookupPokemon(ctx context.Context, name string) (domain.Pokemon, error)
}

// SetService glues command handling to the record store: dex validation,
// content screening, then persistence.
type SetService struct {
	repository repositories.ISetRepository
	registry   *dex.Registry
	suggester  *dex.Suggester
	screener   *moderation.Screener
	log        *slog.Logger
	maxSuggest int
}

func NewSetService(
	repository repositories.ISetRepository,
	registry *dex.Registry,
	suggester *dex.Suggester,
	screener *moderation.Screener,
	log *slog.Logger,
	maxSuggest int,
) *SetService {
	return &SetService{
		repository: repository,
		registry:   registry,
		suggester:  suggester,
		screener:   screener,
		log:        log,
		maxSuggest: maxSuggest,
	}
}

// StoreSet validates a submission end to end and appends it to the
// owner's record. Multi-word tokens arrive hyphen-joined from the chat
// surface (light-ball); hyphens become spaces before storage, exactly as
// users see them echoed back.
func (s *SetService) StoreSet(ctx context.Context, cmd domain.StoreSetCommand) (domain.Pokemon, domain.PokemonSet, error) {
	pokemon, err := s.LookupPokemon(ctx, cmd.Pokemon)
	if err != nil {
		return domain.Pokemon{}, domain.PokemonSet{}, err
	}

	if err := validate.Struct(cmd); err != nil {
		return domain.Pokemon{}, domain.PokemonSet{}, fmt.Errorf(
			"%w: provide an item and exactly four moves, each at most 64 characters", oakerrors.ErrInvalidSubmission)
	}

	item := Unhyphenate(cmd.Item)
	moves := lo.Map(cmd.Moves, func(m string, _ int) string { return Unhyphenate(m) })

	for _, text := range append([]string{item}, moves...) {
		if !s.screener.Clean(text) {
			s.log.Warn("Submission rejected by screener", "owner", cmd.Owner, "pokemon", pokemon.Name)
			return domain.Pokemon{}, domain.PokemonSet{}, oakerrors.ErrForbiddenContent
		}
	}

	set := domain.PokemonSet{
		ID:        uuid.New(),
		Item:      item,
		Moves:     moves,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repository.Append(cmd.Owner, pokemon, set); err != nil {
		return domain.Pokemon{}, domain.PokemonSet{}, err
	}
	return pokemon, set, nil
}

// GetSets fetches the owner's record for one Pokemon.
func (s *SetService) GetSets(ctx context.Context, owner, name string) (domain.Pokemon, domain.SetRecord, error) {
	pokemon, err := s.LookupPokemon(ctx, name)
	if err != nil {
		return domain.Pokemon{}, domain.SetRecord{}, err
	}

	record, err := s.repository.Get(owner, pokemon)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return pokemon, domain.SetRecord{}, fmt.Errorf(
			"%w: no sets have been added for %s yet", oakerrors.ErrNoSetsStored, pokemon.Name)
	}
	if err != nil {
		return domain.Pokemon{}, domain.SetRecord{}, err
	}
	return pokemon, record, nil
}

// DeleteSet removes one set (1-based index) or the whole record when no
// index is given. It returns how many sets remain.
func (s *SetService) DeleteSet(ctx context.Context, cmd domain.DeleteSetCommand) (domain.Pokemon, int, error) {
	pokemon, err := s.LookupPokemon(ctx, cmd.Pokemon)
	if err != nil {
		return domain.Pokemon{}, 0, err
	}

	if cmd.Index == nil {
		err := s.repository.DeleteRecord(cmd.Owner, pokemon)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return pokemon, 0, fmt.Errorf(
				"%w: nothing stored for %s", oakerrors.ErrNoSetsStored, pokemon.Name)
		}
		return pokemon, 0, err
	}

	remaining, err := s.repository.DeleteSet(cmd.Owner, pokemon, *cmd.Index-1)
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return pokemon, 0, fmt.Errorf(
			"%w: nothing stored for %s", oakerrors.ErrNoSetsStored, pokemon.Name)
	case errors.Is(err, oakerrors.ErrInvalidSetIndex):
		return pokemon, 0, fmt.Errorf(
			"%w: %s has no set number %d", oakerrors.ErrInvalidSetIndex, pokemon.Name, *cmd.Index)
	case err != nil:
		return domain.Pokemon{}, 0, err
	}
	return pokemon, len(remaining.Sets), nil
}

// ListOwner returns every record the owner has stored, in dex order.
func (s *SetService) ListOwner(owner string) ([]domain.SetRecord, error) {
	return s.repository.ListOwner(owner)
}

// LookupPokemon resolves a name against the reference dataset. Unknown
// names come back as a validation error carrying close matches.
func (s *SetService) LookupPokemon(ctx context.Context, name string) (domain.Pokemon, error) {
	if pokemon, ok := s.registry.Lookup(name); ok {
		return pokemon, nil
	}

	suggestions, err := s.suggester.Suggest(ctx, name, s.maxSuggest)
	if err != nil {
		s.log.Error("Suggestion lookup failed", "name", name, "error", err)
	}
	if len(suggestions) == 0 {
		return domain.Pokemon{}, fmt.Errorf(
			"%w: %s is not in the national dex", oakerrors.ErrUnknownPokemon, Unhyphenate(name))
	}
	return domain.Pokemon{}, fmt.Errorf("%w: %s is not in the national dex. Did you mean %s?",
		oakerrors.ErrUnknownPokemon, Unhyphenate(name), strings.Join(suggestions, ", "))
}

// Unhyphenate turns the chat-surface word joiner back into spaces.
func Unhyphenate(token string) string {
	return strings.ReplaceAll(token, "-", " ")
}
