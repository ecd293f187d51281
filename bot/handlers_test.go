package bot

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"oakbot/domain"
	oakerrors "oakbot/errors"
	"oakbot/mocks"
)

// fakeAPI records everything the bot tries to send. It satisfies Poller
// so tests can drive Handle without a live Telegram connection.
type fakeAPI struct {
	sent []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel { return nil }

func (f *fakeAPI) StopReceivingUpdates() {}

func (f *fakeAPI) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent)
	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok, "expected a plain message, got %T", f.sent[len(f.sent)-1])
	return msg.Text
}

// commandUpdate builds an update the way Telegram delivers slash
// commands: the leading token tagged with a bot_command entity.
func commandUpdate(userID int64, text string) tgbotapi.Update {
	command := strings.Fields(text)[0]
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: 1},
		Text:      text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(command)},
		},
	}}
}

func newTestBot(api Poller, sets *mocks.MockISetService, admin *mocks.MockIAdminService, burst int) *Bot {
	return New(api, sets, admin, slog.Default(), Options{
		PollTimeout:     30,
		RateLimitBurst:  burst,
		RateLimitWindow: time.Minute,
	})
}

func Test_Handle_Store_Command(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	api := &fakeAPI{}
	sets := mocks.NewMockISetService(ctrl)
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, sets, admin, 10)

	sets.EXPECT().
		StoreSet(gomock.Any(), domain.StoreSetCommand{
			Owner:   "7",
			Pokemon: "pikachu",
			Item:    "light-ball",
			Moves:   []string{"thunderbolt", "volt-tackle", "surf", "protect"},
		}).
		Return(
			domain.Pokemon{ID: 25, Name: "Pikachu"},
			domain.PokemonSet{Item: "light ball", Moves: []string{"thunderbolt", "volt tackle", "surf", "protect"}},
			nil,
		).
		Times(1)

	oak.Handle(context.Background(), commandUpdate(7, "/set pikachu light-ball thunderbolt volt-tackle surf protect"))

	text := api.lastText(t)
	req.Contains(text, "Added new set for Pikachu!")
	req.Contains(text, "Item: light ball")
	req.Contains(text, "thunderbolt, volt tackle, surf, and protect.")
}

func Test_Handle_Store_Command_Wrong_Arity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := &fakeAPI{}
	sets := mocks.NewMockISetService(ctrl)
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, sets, admin, 10)

	sets.EXPECT().StoreSet(gomock.Any(), gomock.Any()).Times(0)

	oak.Handle(context.Background(), commandUpdate(7, "/set pikachu light-ball"))

	require.Contains(t, api.lastText(t), "expected a pokemon, an item and four moves")
}

func Test_Handle_Get_Command(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	api := &fakeAPI{}
	sets := mocks.NewMockISetService(ctrl)
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, sets, admin, 10)

	sets.EXPECT().
		GetSets(gomock.Any(), "7", "pikachu").
		Return(
			domain.Pokemon{ID: 25, Name: "Pikachu"},
			domain.SetRecord{
				Owner:   "7",
				DexID:   25,
				Pokemon: "Pikachu",
				Sets:    []domain.PokemonSet{{Item: "light ball", Moves: []string{"a", "b", "c", "d"}}},
			},
			nil,
		).
		Times(1)

	oak.Handle(context.Background(), commandUpdate(7, "/get pikachu"))

	// No sprite on disk, so the handler falls back to a plain reply.
	text := api.lastText(t)
	req.Contains(text, "Pikachu's sets")
	req.Contains(text, "light ball")
}

func Test_Handle_Del_Command_With_Index(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := &fakeAPI{}
	sets := mocks.NewMockISetService(ctrl)
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, sets, admin, 10)

	index := 2
	sets.EXPECT().
		DeleteSet(gomock.Any(), domain.DeleteSetCommand{Owner: "7", Pokemon: "pikachu", Index: &index}).
		Return(domain.Pokemon{ID: 25, Name: "Pikachu"}, 1, nil).
		Times(1)

	oak.Handle(context.Background(), commandUpdate(7, "/del pikachu 2"))

	require.Contains(t, api.lastText(t), "Deleted set 2 for Pikachu. 1 remaining.")
}

func Test_Handle_Del_Command_Bad_Index(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := &fakeAPI{}
	sets := mocks.NewMockISetService(ctrl)
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, sets, admin, 10)

	sets.EXPECT().DeleteSet(gomock.Any(), gomock.Any()).Times(0)

	oak.Handle(context.Background(), commandUpdate(7, "/del pikachu zero"))

	require.Contains(t, api.lastText(t), "set number must be a positive integer")
}

func Test_Handle_Unknown_Command(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := &fakeAPI{}
	oak := newTestBot(api, mocks.NewMockISetService(ctrl), mocks.NewMockIAdminService(ctrl), 10)

	oak.Handle(context.Background(), commandUpdate(7, "/dance"))

	require.Contains(t, api.lastText(t), "Try /help")
}

func Test_Handle_Ignores_Plain_Messages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := &fakeAPI{}
	oak := newTestBot(api, mocks.NewMockISetService(ctrl), mocks.NewMockIAdminService(ctrl), 10)

	oak.Handle(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: 7},
		Chat:      &tgbotapi.Chat{ID: 1},
		Text:      "hello professor",
	}})
	oak.Handle(context.Background(), tgbotapi.Update{})

	require.Empty(t, api.sent)
}

func Test_Handle_Rate_Limits_Per_User(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	api := &fakeAPI{}
	oak := newTestBot(api, mocks.NewMockISetService(ctrl), mocks.NewMockIAdminService(ctrl), 1)

	oak.Handle(context.Background(), commandUpdate(7, "/help"))
	oak.Handle(context.Background(), commandUpdate(7, "/help"))

	req.Contains(api.lastText(t), "Easy there, trainer.")

	// Another user is not affected by the first one's budget.
	oak.Handle(context.Background(), commandUpdate(8, "/help"))
	req.NotContains(api.lastText(t), "Easy there, trainer.")
}

func Test_Handle_Admin_Commands_Require_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := &fakeAPI{}
	sets := mocks.NewMockISetService(ctrl)
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, sets, admin, 10)

	admin.EXPECT().ClearPokemon(gomock.Any()).Times(0)

	oak.Handle(context.Background(), commandUpdate(7, "/clear pikachu"))

	require.Contains(t, api.lastText(t), "admin session required")
}

func Test_Handle_Login_Then_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	api := &fakeAPI{}
	sets := mocks.NewMockISetService(ctrl)
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, sets, admin, 10)

	admin.EXPECT().Login("7", "hunter2").Return("session-token", nil).Times(1)
	admin.EXPECT().Verify("7", "session-token").Return(nil).Times(1)
	admin.EXPECT().ClearPokemon("pikachu").Return(3, nil).Times(1)

	oak.Handle(context.Background(), commandUpdate(7, "/login hunter2"))
	req.Contains(api.lastText(t), "Admin session opened.")

	oak.Handle(context.Background(), commandUpdate(7, "/clear pikachu"))
	req.Contains(api.lastText(t), "Cleared 3 records for pikachu.")
}

func Test_Handle_Login_Wrong_Password(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := &fakeAPI{}
	admin := mocks.NewMockIAdminService(ctrl)
	oak := newTestBot(api, mocks.NewMockISetService(ctrl), admin, 10)

	admin.EXPECT().Login("7", "guess").Return("", oakerrors.ErrInvalidCredentials).Times(1)

	oak.Handle(context.Background(), commandUpdate(7, "/login guess"))

	require.Contains(t, api.lastText(t), "invalid credentials")
}

func Test_Handle_Help_Lists_Commands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	api := &fakeAPI{}
	oak := newTestBot(api, mocks.NewMockISetService(ctrl), mocks.NewMockIAdminService(ctrl), 10)

	oak.Handle(context.Background(), commandUpdate(7, "/help"))

	text := api.lastText(t)
	for _, name := range []string{"/set", "/get", "/del", "/mysets", "/dex", "/login", "/clear", "/purge", "/status", "/help"} {
		req.Contains(text, name)
	}
}
