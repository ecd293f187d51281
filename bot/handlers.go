package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oakbot/domain"
	oakerrors "oakbot/errors"
	"oakbot/services"
)

// sessionStore keeps the live admin token per chat user. Tokens expire
// on their own; a stale entry simply fails verification.
type sessionStore struct {
	mu     sync.RWMutex
	tokens map[int64]string
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[int64]string)}
}

func (s *sessionStore) put(userID int64, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = token
}

func (s *sessionStore) verify(admin services.IAdminService, msg *tgbotapi.Message) error {
	s.mu.RLock()
	token, ok := s.tokens[msg.From.ID]
	s.mu.RUnlock()
	if !ok {
		return oakerrors.ErrNotAdmin
	}
	return admin.Verify(ownerID(msg), token)
}

func ownerID(msg *tgbotapi.Message) string {
	return strconv.FormatInt(msg.From.ID, 10)
}

func reply(api BotAPI, msg *tgbotapi.Message, text string) error {
	m := tgbotapi.NewMessage(msg.Chat.ID, text)
	m.ReplyToMessageID = msg.MessageID
	_, err := api.Send(m)
	return err
}

func replyMono(api BotAPI, msg *tgbotapi.Message, text string) error {
	m := tgbotapi.NewMessage(msg.Chat.ID, "```\n"+text+"\n```")
	m.ReplyToMessageID = msg.MessageID
	m.ParseMode = tgbotapi.ModeMarkdown
	_, err := api.Send(m)
	return err
}

// replyWithSprite sends text together with the Pokemon's sprite, or
// falls back to a plain message when the asset is missing or not a PNG.
func replyWithSprite(api BotAPI, msg *tgbotapi.Message, pokemon domain.Pokemon, text string, log *slog.Logger) error {
	file, err := SpriteFile(pokemon)
	if err != nil {
		log.Warn("Sprite skipped", "pokemon", pokemon.Name, "error", err)
		return reply(api, msg, text)
	}
	photo := tgbotapi.NewPhoto(msg.Chat.ID, file)
	photo.Caption = text
	photo.ReplyToMessageID = msg.MessageID
	_, err = api.Send(photo)
	return err
}

type storeCommand struct {
	sets services.ISetService
}

func (c storeCommand) Description() string {
	return "store a set: /set <pokemon> <item> <move1> <move2> <move3> <move4>"
}

func (c storeCommand) Execute(ctx context.Context, api BotAPI, msg *tgbotapi.Message, args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("%w: expected a pokemon, an item and four moves. Join multi-word tokens with a hyphen (light-ball)",
			oakerrors.ErrInvalidSubmission)
	}

	pokemon, set, err := c.sets.StoreSet(ctx, domain.StoreSetCommand{
		Owner:   ownerID(msg),
		Pokemon: args[0],
		Item:    args[1],
		Moves:   args[2:6],
	})
	if err != nil {
		return err
	}

	return reply(api, msg, fmt.Sprintf("Added new set for %s!\nItem: %s\nMoves: %s, %s, %s, and %s.",
		pokemon.Name, set.Item, set.Moves[0], set.Moves[1], set.Moves[2], set.Moves[3]))
}

type getCommand struct {
	sets services.ISetService
	log  *slog.Logger
}

func (c getCommand) Description() string {
	return "show your stored sets for a pokemon"
}

func (c getCommand) Execute(ctx context.Context, api BotAPI, msg *tgbotapi.Message, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: /get <pokemon>", oakerrors.ErrInvalidSubmission)
	}

	pokemon, record, err := c.sets.GetSets(ctx, ownerID(msg), args[0])
	if err != nil {
		return err
	}
	return replyWithSprite(api, msg, pokemon, RenderRecord(record), c.log)
}

type delCommand struct {
	sets services.ISetService
}

func (c delCommand) Description() string {
	return "delete a set: /del <pokemon> [set number]"
}

func (c delCommand) Execute(ctx context.Context, api BotAPI, msg *tgbotapi.Message, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: usage: /del <pokemon> [set number]", oakerrors.ErrInvalidSubmission)
	}

	cmd := domain.DeleteSetCommand{Owner: ownerID(msg), Pokemon: args[0]}
	if len(args) == 2 {
		index, err := strconv.Atoi(args[1])
		if err != nil || index < 1 {
			return fmt.Errorf("%w: set number must be a positive integer", oakerrors.ErrInvalidSubmission)
		}
		cmd.Index = &index
	}

	pokemon, remaining, err := c.sets.DeleteSet(ctx, cmd)
	if err != nil {
		return err
	}
	if cmd.Index == nil || remaining == 0 {
		return reply(api, msg, fmt.Sprintf("Removed all sets for %s.", pokemon.Name))
	}
	return reply(api, msg, fmt.Sprintf("Deleted set %d for %s. %d remaining.", *cmd.Index, pokemon.Name, remaining))
}

type mySetsCommand struct {
	sets services.ISetService
}

func (c mySetsCommand) Description() string {
	return "list every pokemon you stored sets for"
}

func (c mySetsCommand) Execute(_ context.Context, api BotAPI, msg *tgbotapi.Message, _ []string) error {
	records, err := c.sets.ListOwner(ownerID(msg))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return reply(api, msg, RenderOwnerList(records))
	}
	return replyMono(api, msg, RenderOwnerList(records))
}

type dexCommand struct {
	sets services.ISetService
	log  *slog.Logger
}

func (c dexCommand) Description() string {
	return "look a pokemon up in the national dex"
}

func (c dexCommand) Execute(ctx context.Context, api BotAPI, msg *tgbotapi.Message, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: /dex <pokemon>", oakerrors.ErrInvalidSubmission)
	}

	pokemon, err := c.sets.LookupPokemon(ctx, args[0])
	if err != nil {
		return err
	}
	return replyWithSprite(api, msg, pokemon, fmt.Sprintf("#%04d %s", pokemon.ID, pokemon.Name), c.log)
}

type loginCommand struct {
	admin    services.IAdminService
	sessions *sessionStore
}

func (c loginCommand) Description() string {
	return "open an admin session: /login <password>"
}

func (c loginCommand) Execute(_ context.Context, api BotAPI, msg *tgbotapi.Message, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: /login <password>", oakerrors.ErrInvalidSubmission)
	}

	token, err := c.admin.Login(ownerID(msg), args[0])
	if err != nil {
		return err
	}
	c.sessions.put(msg.From.ID, token)
	return reply(api, msg, "Admin session opened.")
}

type clearCommand struct {
	admin    services.IAdminService
	sessions *sessionStore
}

func (c clearCommand) Description() string {
	return "admin: drop every owner's records for a pokemon"
}

func (c clearCommand) Execute(_ context.Context, api BotAPI, msg *tgbotapi.Message, args []string) error {
	if err := c.sessions.verify(c.admin, msg); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: /clear <pokemon>", oakerrors.ErrInvalidSubmission)
	}

	deleted, err := c.admin.ClearPokemon(args[0])
	if err != nil {
		return err
	}
	return reply(api, msg, fmt.Sprintf("Cleared %d records for %s.", deleted, services.Unhyphenate(args[0])))
}

type purgeCommand struct {
	admin    services.IAdminService
	sessions *sessionStore
}

func (c purgeCommand) Description() string {
	return "admin: wipe the whole record table"
}

func (c purgeCommand) Execute(_ context.Context, api BotAPI, msg *tgbotapi.Message, _ []string) error {
	if err := c.sessions.verify(c.admin, msg); err != nil {
		return err
	}
	if err := c.admin.PurgeAll(); err != nil {
		return err
	}
	return reply(api, msg, "All records purged.")
}

type statusCommand struct {
	admin    services.IAdminService
	sessions *sessionStore
}

func (c statusCommand) Description() string {
	return "admin: process and store status"
}

func (c statusCommand) Execute(_ context.Context, api BotAPI, msg *tgbotapi.Message, _ []string) error {
	if err := c.sessions.verify(c.admin, msg); err != nil {
		return err
	}
	snapshot, err := c.admin.Status()
	if err != nil {
		return err
	}
	return replyMono(api, msg, RenderStatus(snapshot))
}

type helpCommand struct {
	registry *Registry
}

func (c helpCommand) Description() string {
	return "show this help"
}

func (c helpCommand) Execute(_ context.Context, api BotAPI, msg *tgbotapi.Message, _ []string) error {
	return reply(api, msg, strings.TrimRight(c.registry.Help(), "\n"))
}
