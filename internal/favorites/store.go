package favorites

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// maxEntries bounds the list; inserting beyond it evicts the oldest entries.
const maxEntries = 8

// DefaultSlotKey is the name of the persisted favorites slot.
const DefaultSlotKey = "skycast-favorites"

// Entry is one favorite location. DisplayName is computed once at creation
// and persisted as-is.
type Entry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	DisplayName string `json:"displayName"`
}

// Store maintains an ordered, deduplicated, size-bounded favorites list,
// persisted in full to a Slot on every mutation. Entries are most-recent
// first; duplicates are detected by (case-insensitive name, exact country).
// The mutex serializes concurrent mutators; the in-memory list stays
// authoritative even when persistence fails.
type Store struct {
	mu      sync.Mutex
	slot    Slot
	entries []Entry
}

// New creates a Store backed by slot, restoring any previously persisted
// list. Absent or malformed persisted data degrades to an empty list.
func New(slot Slot) *Store {
	return &Store{slot: slot, entries: load(slot)}
}

func load(slot Slot) []Entry {
	data, err := slot.Read()
	if err != nil {
		log.Printf("favorites: cannot read persisted list: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("favorites: discarding malformed persisted list: %v", err)
		return nil
	}
	return entries
}

// List returns a copy of the current entries, most recent first.
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add prepends a new entry unless one with the same uniqueness key already
// exists, in which case the list is returned unchanged. The list is truncated
// to the 8 most recent entries and persisted.
func (s *Store) Add(name, country string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(name, country) >= 0 {
		return s.snapshot()
	}

	entry := Entry{
		ID:          uuid.NewString(),
		Name:        name,
		Country:     country,
		DisplayName: displayName(name, country),
	}
	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > maxEntries {
		s.entries = s.entries[:maxEntries]
	}
	s.persist()
	return s.snapshot()
}

// Remove deletes the entry with the given id and persists the result.
// Unknown ids are a no-op.
func (s *Store) Remove(id string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			break
		}
	}
	return s.snapshot()
}

// IsFavorite reports whether an entry with the matching uniqueness key
// exists.
func (s *Store) IsFavorite(name, country string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(name, country) >= 0
}

func (s *Store) indexOf(name, country string) int {
	for i, e := range s.entries {
		if strings.EqualFold(e.Name, name) && e.Country == country {
			return i
		}
	}
	return -1
}

// persist writes the entire current list to the slot. Failures are logged
// and absorbed; favorites then simply do not survive a restart.
func (s *Store) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("favorites: cannot serialize list: %v", err)
		return
	}
	if err := s.slot.Write(data); err != nil {
		log.Printf("favorites: cannot persist list: %v", err)
	}
}

func (s *Store) snapshot() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func displayName(name, country string) string {
	if country != "" {
		return name + ", " + country
	}
	return name
}
