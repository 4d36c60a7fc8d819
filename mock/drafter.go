package mock

import (
	"context"

	"github.com/stevenrichter16/mypoem"
)

// Compile-time interface verification.
var _ mypoem.Drafter = (*Drafter)(nil)

// Drafter is a mock implementation of mypoem.Drafter.
type Drafter struct {
	DraftFn func(ctx context.Context, req mypoem.DraftRequest) (string, error)
}

func (d *Drafter) Draft(ctx context.Context, req mypoem.DraftRequest) (string, error) {
	return d.DraftFn(ctx, req)
}
