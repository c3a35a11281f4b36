package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrKeyNotFound is returned by [Keychain.Get] for absent keys.
var ErrKeyNotFound = errors.New("client: key not found")

// Keychain persists small session snapshots between runs. Implementations
// must be safe for concurrent use.
type Keychain interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemoryKeychain keeps values in process memory. It is the default
// backend and what tests use.
type MemoryKeychain struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKeychain creates an empty in-memory keychain.
func NewMemoryKeychain() *MemoryKeychain {
	return &MemoryKeychain{values: make(map[string][]byte)}
}

func (k *MemoryKeychain) Get(key string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	v, ok := k.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (k *MemoryKeychain) Set(key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	k.values[key] = v
	return nil
}

func (k *MemoryKeychain) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.values, key)
	return nil
}

// FileKeychain stores each key as a JSON file under a directory, with
// 0600 permissions. Suitable for CLI clients that survive restarts.
type FileKeychain struct {
	mu  sync.Mutex
	dir string
}

// NewFileKeychain creates the backing directory if needed.
func NewFileKeychain(dir string) (*FileKeychain, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileKeychain{dir: dir}, nil
}

func (k *FileKeychain) path(key string) string {
	return filepath.Join(k.dir, key+".json")
}

func (k *FileKeychain) Get(key string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	data, err := os.ReadFile(k.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	return data, err
}

func (k *FileKeychain) Set(key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !json.Valid(value) {
		return errors.New("client: keychain values must be JSON")
	}
	return os.WriteFile(k.path(key), value, 0o600)
}

func (k *FileKeychain) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	err := os.Remove(k.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
