// Package library holds the album collection and the selected-album reference.
package library

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cesargomez89/sonicvault/internal/domain"
)

var (
	ErrNotFound  = errors.New("album not found")
	ErrDuplicate = errors.New("album id already exists")
	ErrEmptyID   = errors.New("album id is required")
)

// Store is the in-memory ordered album collection. Callers only ever see
// copies; all mutation goes through Add, Update and Remove.
type Store struct {
	mu       sync.RWMutex
	albums   []domain.Album
	index    map[string]int
	seen     map[string]struct{} // every id ever added, so removed ids are not reused
	selected string
}

func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
		seen:  make(map[string]struct{}),
	}
}

// Add appends one album.
func (s *Store) Add(a domain.Album) error {
	return s.AddMany([]domain.Album{a})
}

// AddMany appends albums in order. Either all are added or none are.
func (s *Store) AddMany(albums []domain.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(albums))
	for _, a := range albums {
		if a.ID == "" {
			return ErrEmptyID
		}
		if _, ok := s.seen[a.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicate, a.ID)
		}
		if _, ok := batch[a.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicate, a.ID)
		}
		batch[a.ID] = struct{}{}
	}

	for _, a := range albums {
		c := a.Clone()
		c.Normalize()
		s.index[c.ID] = len(s.albums)
		s.seen[c.ID] = struct{}{}
		s.albums = append(s.albums, c)
	}
	return nil
}

func (s *Store) Get(id string) (domain.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Album{}, ErrNotFound
	}
	return s.albums[i].Clone(), nil
}

// List returns a snapshot of every album in insertion order.
func (s *Store) List() []domain.Album {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Album, len(s.albums))
	for i := range s.albums {
		out[i] = s.albums[i].Clone()
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.albums)
}

// Update applies a partial update to the album with the given id and
// returns the updated record.
func (s *Store) Update(id string, patch domain.AlbumPatch) (domain.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Album{}, ErrNotFound
	}
	patch.Apply(&s.albums[i])
	return s.albums[i].Clone(), nil
}

// Remove deletes the album. Removing the selected album clears the selection.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}

	s.albums = append(s.albums[:i], s.albums[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.albums); j++ {
		s.index[s.albums[j].ID] = j
	}

	if s.selected == id {
		s.selected = ""
	}
	return nil
}

// Select marks an album as selected.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return ErrNotFound
	}
	s.selected = id
	return nil
}

// Selected returns the selected album, if any.
func (s *Store) Selected() (domain.Album, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == "" {
		return domain.Album{}, false
	}
	return s.albums[s.index[s.selected]].Clone(), true
}

func (s *Store) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = ""
	s.mu.Unlock()
}
