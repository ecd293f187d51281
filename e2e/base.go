package e2e

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"

	"oakbot/auth"
	"oakbot/dex"
	"oakbot/moderation"
	"oakbot/observability"
	"oakbot/repositories"
	"oakbot/services"
)

const adminPassword = "Sup3rS3cretOak!"

// BaseSuite assembles the full stack over an in-memory store: dex
// registry and suggester from the real dataset file, screener, record
// repository and both services. Each suite run gets a fresh database.
type BaseSuite struct {
	suite.Suite
	Config Config

	db        *badger.DB
	suggester *dex.Suggester
	Sets      services.ISetService
	Admin     services.IAdminService
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseSuite) SetupTest() {
	req := s.Require()
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	s.db = db

	registry, err := dex.Load(s.Config.DexFile, s.Config.SpriteDir)
	req.NoError(err)

	suggester, err := dex.NewSuggester(registry)
	req.NoError(err)
	s.suggester = suggester

	screener, err := moderation.NewScreener([]string{"badword"})
	req.NoError(err)

	hash, err := auth.HashPassword(adminPassword)
	req.NoError(err)

	collector, err := observability.NewCollector()
	req.NoError(err)

	repository := repositories.NewSetRepository(db, log)
	s.Sets = services.NewSetService(repository, registry, suggester, screener, log, 3)
	s.Admin = services.NewAdminService(repository, registry,
		auth.NewSessions("0123456789abcdef0123456789abcdef", 30*time.Minute), hash, collector, log)
}

func (s *BaseSuite) TearDownTest() {
	if s.suggester != nil {
		s.Require().NoError(s.suggester.Close())
	}
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

// Step prints a colorized header so scenario logs stay readable.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}
