package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"oakbot/auth"
	"oakbot/dex"
	oakerrors "oakbot/errors"
	"oakbot/mocks"
)

const adminPassword = "Sup3rS3cretOak!"

func newTestAdminService(t *testing.T, repo *mocks.MockISetRepository) *AdminService {
	t.Helper()

	registry, err := dex.NewRegistry(testPokemon)
	require.NoError(t, err)

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)

	sessions := auth.NewSessions("0123456789abcdef0123456789abcdef", 30*time.Minute)
	return NewAdminService(repo, registry, sessions, hash, nil, slog.Default())
}

func TestAdminService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestAdminService(t, mocks.NewMockISetRepository(ctrl))

	t.Run("should issue a token for the right password", func(t *testing.T) {
		req := require.New(t)

		token, err := svc.Login("7", adminPassword)
		req.NoError(err)
		req.NotEmpty(token)
		req.NoError(svc.Verify("7", token))
	})

	t.Run("should stay generic on a wrong password", func(t *testing.T) {
		_, err := svc.Login("7", "guess")
		require.ErrorIs(t, err, oakerrors.ErrInvalidCredentials)
	})
}

func TestAdminService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestAdminService(t, mocks.NewMockISetRepository(ctrl))

	token, err := svc.Login("7", adminPassword)
	require.NoError(t, err)

	t.Run("should reject a token issued to someone else", func(t *testing.T) {
		require.ErrorIs(t, svc.Verify("8", token), oakerrors.ErrNotAdmin)
	})

	t.Run("should reject garbage tokens", func(t *testing.T) {
		require.ErrorIs(t, svc.Verify("7", "not-a-jwt"), oakerrors.ErrNotAdmin)
	})
}

func TestAdminService_ClearPokemon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockISetRepository(ctrl)
	svc := newTestAdminService(t, mockRepo)

	t.Run("should purge by dex id", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().PurgePokemon(25).Return(3, nil).Times(1)

		deleted, err := svc.ClearPokemon("pikachu")
		req.NoError(err)
		req.Equal(3, deleted)
	})

	t.Run("should reject an unknown pokemon", func(t *testing.T) {
		mockRepo.EXPECT().PurgePokemon(gomock.Any()).Times(0)

		_, err := svc.ClearPokemon("missingno")
		require.ErrorIs(t, err, oakerrors.ErrUnknownPokemon)
	})
}
