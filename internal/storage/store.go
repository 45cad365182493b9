package storage

// Store defines the interface for the local key/value namespace.
// Values are whole JSON documents; every write replaces the value for its key.
type Store interface {
	// Get returns the raw value for key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set replaces the value for key.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
