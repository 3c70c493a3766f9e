package content

import (
	"log"
	"sync/atomic"

	"contenthub/internal/source"
	"contenthub/pkg/models"
)

// Snapshot is an immutable in-memory view of the podcast source. Requests
// read it lock-free; Reload re-reads the source and swaps the pointer
// atomically, so a request sees either the old or the new view, never a
// partially loaded one.
type Snapshot struct {
	store *source.Store
	cur   atomic.Pointer[[]models.Podcast]
}

func NewSnapshot(store *source.Store) *Snapshot {
	s := &Snapshot{store: store}
	n := s.Reload()
	log.Printf("[snapshot] loaded %d podcasts", n)
	return s
}

func (s *Snapshot) Get() []models.Podcast {
	p := s.cur.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Reload swaps in a freshly loaded view and returns its size.
func (s *Snapshot) Reload() int {
	podcasts := s.store.Podcasts()
	s.cur.Store(&podcasts)
	return len(podcasts)
}
