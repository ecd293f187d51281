package services

import (
	"fmt"
	"log/slog"

	"oakbot/auth"
	"oakbot/dex"
	oakerrors "oakbot/errors"
	"oakbot/observability"
	"oakbot/repositories"
)

//go:generate go run go.uber.org/mock/mockgen -source=admin_service.go -destination=../mocks/mock_admin_service.go -package=mocks

type IAdminService interface {
	Login(userID, password string) (string, error)
	Verify(userID, token string) error
	ClearPokemon(name string) (int, error)
	PurgeAll() error
	Status() (observability.Snapshot, error)
}

// AdminService gates the maintenance commands. Authentication is a
// single shared admin password (stored as an Argon2id hash); a
// successful login yields a short-lived session token bound to the
// requesting chat user.
type AdminService struct {
	repository   repositories.ISetRepository
	registry     *dex.Registry
	sessions     auth.Sessions
	passwordHash string
	collector    *observability.Collector
	log          *slog.Logger
}

func NewAdminService(
	repository repositories.ISetRepository,
	registry *dex.Registry,
	sessions auth.Sessions,
	passwordHash string,
	collector *observability.Collector,
	log *slog.Logger,
) *AdminService {
	return &AdminService{
		repository:   repository,
		registry:     registry,
		sessions:     sessions,
		passwordHash: passwordHash,
		collector:    collector,
		log:          log,
	}
}

// Login verifies the admin password and issues a session token.
// Failures stay generic on purpose.
func (s *AdminService) Login(userID, password string) (string, error) {
	match, err := auth.ComparePassword(password, s.passwordHash)
	if err != nil || !match {
		s.log.Warn("Failed admin login", "user", userID)
		return "", oakerrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", oakerrors.ErrTokenGeneration, err)
	}
	s.log.Info("Admin session opened", "user", userID)
	return token, nil
}

// Verify checks that the token is live and was issued to this user.
func (s *AdminService) Verify(userID, token string) error {
	claims, err := s.sessions.Validate(token)
	if err != nil || claims.UserID != userID || claims.Role != "admin" {
		return oakerrors.ErrNotAdmin
	}
	return nil
}

// ClearPokemon drops every owner's records for one Pokemon.
func (s *AdminService) ClearPokemon(name string) (int, error) {
	pokemon, ok := s.registry.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not in the national dex",
			oakerrors.ErrUnknownPokemon, Unhyphenate(name))
	}
	return s.repository.PurgePokemon(pokemon.ID)
}

// PurgeAll wipes the whole record table.
func (s *AdminService) PurgeAll() error {
	return s.repository.PurgeAll()
}

// Status combines a process snapshot with store counters.
func (s *AdminService) Status() (observability.Snapshot, error) {
	snapshot, err := s.collector.Collect()
	if err != nil {
		return observability.Snapshot{}, err
	}
	records, sets, err := s.repository.Stats()
	if err != nil {
		return observability.Snapshot{}, err
	}
	snapshot.Records = records
	snapshot.Sets = sets
	return snapshot, nil
}
