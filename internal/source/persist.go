package source

import (
	"encoding/json"
	"fmt"
	"os"
)

// Records returns the raw record form of a named source for the offline
// tools. Unlike the typed readers this is strict: the canonicalizer must
// not silently run against an empty collection.
func (s *Store) Records(name string) ([]map[string]any, error) {
	return ReadRecords(s.path(name))
}

// Persist writes the canonicalized records back over the named source.
func (s *Store) Persist(name string, records []map[string]any) error {
	return WriteRecords(s.path(name), records)
}

func ReadRecords(path string) ([]map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []map[string]any
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

// WriteRecords replaces the file contents via tmp+rename so a crash cannot
// leave a half-written source behind.
func WriteRecords(path string, records []map[string]any) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
