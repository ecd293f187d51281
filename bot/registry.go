package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the slice of the Telegram client the handlers need.
// Narrowed to an interface so handler tests can run without a network.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Command is one chat command. Execute sends its own success replies and
// returns an error for the dispatcher to translate (validation errors go
// to the user verbatim, anything else becomes a generic failure).
type Command interface {
	Execute(ctx context.Context, api BotAPI, msg *tgbotapi.Message, args []string) error
	Description() string
}

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(name string, cmd Command) {
	r.commands[name] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Help renders one line per registered command, sorted by name.
func (r *Registry) Help() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "/%s - %s\n", name, r.commands[name].Description())
	}
	return b.String()
}
