package knowledge

// Store exposes catalog retrieval and relevance search for the response engine
// and HTTP handlers.
type Store interface {
	List() []Entry
	FindByID(id string) (Entry, bool)
	Search(query string, limit int) []Entry
}

// MemoryStore implements Store with an in-memory slice, seeded once at startup.
type MemoryStore struct {
	items   []Entry
	weights Weights
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied entries,
// scoring searches with the given weights.
func NewMemoryStore(items []Entry, weights Weights) *MemoryStore {
	return &MemoryStore{items: append([]Entry(nil), items...), weights: weights}
}

// List returns the full catalog.
func (s *MemoryStore) List() []Entry {
	return append([]Entry(nil), s.items...)
}

// FindByID looks up an entry by identifier.
func (s *MemoryStore) FindByID(id string) (Entry, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Entry{}, false
}
