package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements Store on a single JSON file holding the whole
// namespace as a key → raw value map.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	data     map[string]json.RawMessage
}

// NewFileStore opens (or creates) the namespace file at filePath.
// A missing or unreadable file yields an empty namespace, never an error.
func NewFileStore(filePath string) (*FileStore, error) {
	s := &FileStore{
		filePath: filePath,
		data:     make(map[string]json.RawMessage),
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, err
	}
	s.loadFromFile()
	return s, nil
}

func (s *FileStore) loadFromFile() {
	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: could not read %s, starting empty: %v", s.filePath, err)
		}
		return
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("storage: corrupt namespace file %s, starting empty: %v", s.filePath, err)
		s.data = make(map[string]json.RawMessage)
	}
}

func (s *FileStore) saveToFile() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, raw, 0644)
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.data[key] = stored
	return s.saveToFile()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.saveToFile()
}
