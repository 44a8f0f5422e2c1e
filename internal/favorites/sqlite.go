package favorites

import (
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

// SQLiteSlot stores the value in a key-value table, one row per slot key.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

// NewSQLiteSlot opens (or creates) the database at path and applies the
// minimal schema. The slot key identifies this store's row.
func NewSQLiteSlot(path, key string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (
        key TEXT PRIMARY KEY,
        value TEXT
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteSlot{db: db, key: key}, nil
}

// Read returns the stored value, or nil when the slot has never been written.
func (s *SQLiteSlot) Read() ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv(key, value) VALUES(?, ?)`, s.key, string(data))
	return err
}

func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
