package catalog

import "sync/atomic"

// Store holds the current dataset. A new dataset replaces the old one
// wholesale; readers always see a complete dataset or none.
type Store struct {
	current atomic.Pointer[Dataset]
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Current returns the installed dataset, or nil before the first load
func (s *Store) Current() *Dataset {
	return s.current.Load()
}

// Replace installs ds and returns the previous dataset
func (s *Store) Replace(ds *Dataset) *Dataset {
	return s.current.Swap(ds)
}
