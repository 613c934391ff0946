package synonyms

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore persists the user-editable synonym table as a JSON object of
// variant -> canonical pairs. A missing file is treated as an empty table so
// first runs work without setup.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the user synonym table. Returns an empty map when the file does
// not exist.
func (s *FileStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, &StoreError{Path: s.path, Message: "failed to read user synonyms", Cause: err}
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &StoreError{Path: s.path, Message: "failed to parse user synonyms JSON", Cause: err}
	}
	if table == nil {
		table = map[string]string{}
	}
	return table, nil
}

// Save writes the user synonym table, creating parent directories as needed.
func (s *FileStore) Save(table map[string]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StoreError{Path: s.path, Message: "failed to create directory", Cause: err}
		}
	}

	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return &StoreError{Path: s.path, Message: "failed to encode user synonyms", Cause: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StoreError{Path: s.path, Message: "failed to write user synonyms", Cause: err}
	}
	return nil
}
