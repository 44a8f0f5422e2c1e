package favorites

import (
	"errors"
	"os"
)

// Slot is a single durable key-value slot holding the serialized favorites
// list. Write fully replaces the prior value.
type Slot interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileSlot persists the value as one JSON file on disk.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Read returns the file contents, or nil when the file does not exist yet.
func (s *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (s *FileSlot) Write(data []byte) error {
	return os.WriteFile(s.path, data, 0o644)
}
