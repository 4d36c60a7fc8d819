// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import "github.com/stevenrichter16/mypoem"

// Compile-time interface verification.
var _ mypoem.Differ = (*Differ)(nil)

// Differ is a mock implementation of mypoem.Differ.
type Differ struct {
	DiffFn func(old, new string) []mypoem.Segment
}

func (d *Differ) Diff(old, new string) []mypoem.Segment {
	return d.DiffFn(old, new)
}
