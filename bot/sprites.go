package bot

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oakbot/domain"
	oakerrors "oakbot/errors"
)

// SpriteFile resolves a Pokemon's sprite for attachment. The file must
// exist and sniff as PNG; a broken asset must never fail the command
// that wanted to show it.
func SpriteFile(pokemon domain.Pokemon) (tgbotapi.RequestFileData, error) {
	mt, err := mimetype.DetectFile(pokemon.SpritePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", oakerrors.ErrSpriteUnavailable, pokemon.SpritePath, err)
	}
	if !mt.Is("image/png") {
		return nil, fmt.Errorf("%w: %s detected as %s, want image/png",
			oakerrors.ErrSpriteUnavailable, pokemon.SpritePath, mt.String())
	}
	return tgbotapi.FilePath(pokemon.SpritePath), nil
}
