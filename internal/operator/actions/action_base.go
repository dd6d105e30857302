package actions

import (
	"context"

	"github.com/nickolss/madeforyou-server/internal/storage"
)

// IAction is one finance write, performed inside a single unit of work.
// Perform must leave all of its effects on the writer's transaction so
// the operator can commit or roll back the whole operation.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
