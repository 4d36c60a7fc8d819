package mock

import "github.com/stevenrichter16/mypoem"

// Compile-time interface verification.
var _ mypoem.RevisionStore = (*RevisionStore)(nil)

// RevisionStore is a mock implementation of mypoem.RevisionStore.
type RevisionStore struct {
	LoadFn func(path string) ([]mypoem.Revision, error)
	SaveFn func(path string, revisions []mypoem.Revision) error
}

func (s *RevisionStore) Load(path string) ([]mypoem.Revision, error) {
	return s.LoadFn(path)
}

func (s *RevisionStore) Save(path string, revisions []mypoem.Revision) error {
	return s.SaveFn(path, revisions)
}
