package mock

import (
	"context"

	"github.com/stevenrichter16/mypoem"
)

// Compile-time interface verification.
var _ mypoem.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of mypoem.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, revisions []mypoem.Revision) error
}

func (v *Viewer) View(ctx context.Context, revisions []mypoem.Revision) error {
	return v.ViewFn(ctx, revisions)
}
