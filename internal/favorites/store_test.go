package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

// memorySlot is an in-memory Slot for exercising the store without disk.
type memorySlot struct {
	data     []byte
	readErr  error
	writeErr error
	writes   int
}

func (s *memorySlot) Read() ([]byte, error) { return s.data, s.readErr }

func (s *memorySlot) Write(data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data = data
	s.writes++
	return nil
}

func TestAddDeduplicatesCaseInsensitive(t *testing.T) {
	store := New(&memorySlot{})

	store.Add("Colombo", "LK")
	list := store.Add("colombo", "LK")

	if len(list) != 1 {
		t.Fatalf("expected 1 entry after duplicate add, got %d", len(list))
	}
	if list[0].Name != "Colombo" {
		t.Errorf("expected original casing preserved, got %q", list[0].Name)
	}
}

func TestAddMostRecentFirst(t *testing.T) {
	store := New(&memorySlot{})

	store.Add("Colombo", "LK")
	store.Add("colombo", "LK")
	list := store.Add("London", "GB")

	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Name != "London" || list[0].Country != "GB" {
		t.Errorf("expected London first, got %+v", list[0])
	}
	if list[1].Name != "Colombo" || list[1].Country != "LK" {
		t.Errorf("expected Colombo second, got %+v", list[1])
	}
	if list[0].DisplayName != "London, GB" {
		t.Errorf("expected display name computed at creation, got %q", list[0].DisplayName)
	}
}

func TestAddEvictsOldestBeyondCapacity(t *testing.T) {
	store := New(&memorySlot{})

	for i := 0; i < 9; i++ {
		store.Add(fmt.Sprintf("City%d", i), "XX")
	}

	list := store.List()
	if len(list) != 8 {
		t.Fatalf("expected list capped at 8, got %d", len(list))
	}
	if list[0].Name != "City8" {
		t.Errorf("expected newest entry first, got %q", list[0].Name)
	}
	if store.IsFavorite("City0", "XX") {
		t.Errorf("expected oldest entry evicted")
	}
	if !store.IsFavorite("City1", "XX") {
		t.Errorf("expected second-oldest entry retained")
	}
}

func TestRemove(t *testing.T) {
	store := New(&memorySlot{})

	list := store.Add("Paris", "FR")
	id := list[0].ID

	list = store.Remove(id)
	if len(list) != 0 {
		t.Fatalf("expected empty list after remove, got %d entries", len(list))
	}
	if store.IsFavorite("Paris", "FR") {
		t.Errorf("expected removed entry to no longer be a favorite")
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	store := New(&memorySlot{})
	store.Add("Paris", "FR")

	list := store.Remove("no-such-id")
	if len(list) != 1 {
		t.Fatalf("expected list unchanged, got %d entries", len(list))
	}
}

func TestLoadCorruptDataDegradesToEmpty(t *testing.T) {
	store := New(&memorySlot{data: []byte("{not json")})
	if len(store.List()) != 0 {
		t.Fatalf("expected empty list from corrupt slot")
	}
}

func TestLoadReadErrorDegradesToEmpty(t *testing.T) {
	store := New(&memorySlot{readErr: errors.New("slot unavailable")})
	if len(store.List()) != 0 {
		t.Fatalf("expected empty list when slot is unreadable")
	}
}

func TestCountryExactMatchInKey(t *testing.T) {
	store := New(&memorySlot{})

	store.Add("London", "GB")
	list := store.Add("London", "CA")

	if len(list) != 2 {
		t.Fatalf("expected differing countries to be distinct entries, got %d", len(list))
	}
}

func TestEveryMutationPersistsFullList(t *testing.T) {
	slot := &memorySlot{}
	store := New(slot)

	store.Add("Colombo", "LK")
	store.Add("London", "GB")
	if slot.writes != 2 {
		t.Fatalf("expected 2 writes after 2 adds, got %d", slot.writes)
	}

	var persisted []Entry
	if err := json.Unmarshal(slot.data, &persisted); err != nil {
		t.Fatalf("persisted value not parseable: %v", err)
	}
	if len(persisted) != 2 || persisted[0].Name != "London" {
		t.Fatalf("persisted list does not match in-memory list: %+v", persisted)
	}
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	slot := &memorySlot{writeErr: errors.New("quota exceeded")}
	store := New(slot)

	list := store.Add("Colombo", "LK")
	if len(list) != 1 {
		t.Fatalf("expected in-memory add to succeed despite write failure")
	}
	if !store.IsFavorite("Colombo", "LK") {
		t.Errorf("expected entry to remain in memory")
	}
}

func TestFileSlotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	store := New(NewFileSlot(path))

	store.Add("Colombo", "LK")
	added := store.Add("London", "GB")

	restored := New(NewFileSlot(path))
	list := restored.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 restored entries, got %d", len(list))
	}
	for i := range list {
		if list[i].ID != added[i].ID {
			t.Errorf("entry %d: id changed across restore: %q vs %q", i, list[i].ID, added[i].ID)
		}
		if list[i].DisplayName != added[i].DisplayName {
			t.Errorf("entry %d: display name changed across restore", i)
		}
	}
}

func TestFileSlotAbsentFile(t *testing.T) {
	store := New(NewFileSlot(filepath.Join(t.TempDir(), "missing.json")))
	if len(store.List()) != 0 {
		t.Fatalf("expected empty list for absent file")
	}
}
