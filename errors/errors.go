package errors

import (
	stderrors "errors"
	"fmt"
)

// Validation errors are sent back to the requesting user as-is.
// Everything else is an infrastructure failure: logged, and surfaced
// to the user as a single generic message.
var (
	ErrUnknownPokemon     = fmt.Errorf("unknown pokemon")
	ErrNoSetsStored       = fmt.Errorf("no sets stored")
	ErrInvalidSetIndex    = fmt.Errorf("invalid set index")
	ErrInvalidSubmission  = fmt.Errorf("invalid submission")
	ErrForbiddenContent   = fmt.Errorf("submission contains forbidden words")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAdmin           = fmt.Errorf("admin session required")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrSpriteUnavailable  = fmt.Errorf("sprite unavailable")
)

var validation = []error{
	ErrUnknownPokemon,
	ErrNoSetsStored,
	ErrInvalidSetIndex,
	ErrInvalidSubmission,
	ErrForbiddenContent,
	ErrInvalidCredentials,
	ErrNotAdmin,
}

// IsValidation reports whether err belongs to the user-facing category.
func IsValidation(err error) bool {
	for _, v := range validation {
		if stderrors.Is(err, v) {
			return true
		}
	}
	return false
}
