package mock

import "github.com/stevenrichter16/mypoem"

// Compile-time interface verification.
var _ mypoem.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of mypoem.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
