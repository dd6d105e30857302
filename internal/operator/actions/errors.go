package actions

import (
	"errors"
	"fmt"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// ErrLinkedAccountNotFound means a transaction named an account that does
// not resolve for its owner. It wraps storage.ErrNotFound so the boundary
// maps both to the same not-found outcome.
var ErrLinkedAccountNotFound = fmt.Errorf("linked account: %w", storage.ErrNotFound)

// Validation failures. Handlers reject these before an action is built;
// the actions still guard so the invariant never depends on the boundary.
var (
	ErrAmountNegative   = errors.New("amount must be non-negative")
	ErrDirectionInvalid = errors.New("direction must be income or expense")
)

func asLinkedAccount(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrLinkedAccountNotFound
	}
	return err
}
