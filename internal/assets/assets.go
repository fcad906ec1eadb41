// Package assets resolves and reads startup assets (shader sources and
// texture images) from the configured asset directory.
package assets

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// AssetLoadError reports an asset that could not be read or decoded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return "asset " + e.Path + ": " + e.Err.Error()
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// LoadError wraps err as an AssetLoadError for path, adding msg as context.
func LoadError(path string, err error, msg string) error {
	return &AssetLoadError{Path: path, Err: errors.WithMessage(err, msg)}
}

// Manager reads asset files relative to a base directory.
type Manager struct {
	root  string
	cache *Cache
}

// NewManager creates a manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{
		root:  dir,
		cache: NewCache(),
	}
}

// Resolve returns the filesystem path for an asset path. Absolute paths are
// returned unchanged.
func (m *Manager) Resolve(path string) string {
	if filepath.IsAbs(path) || m.root == "" {
		return path
	}
	return filepath.Join(m.root, path)
}

// Load reads an asset, serving repeated requests from the cache.
func (m *Manager) Load(path string) ([]byte, error) {
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(m.Resolve(path))
	if err != nil {
		return nil, LoadError(path, err, "read")
	}
	if len(data) == 0 {
		return nil, LoadError(path, errors.New("file is empty"), "read")
	}

	m.cache.Set(path, data)
	return data, nil
}

// LoadString reads a text asset such as a shader source.
func (m *Manager) LoadString(path string) (string, error) {
	data, err := m.Load(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close drops cached data. Startup assets are read once, so the scene calls
// this after construction.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
