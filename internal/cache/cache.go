// Package cache keeps compiled client binaries keyed by a hash of their
// sources, so rebuilds that only touch markup, styles or content skip the
// compiler.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const indexFile = "index.yaml"

// Entry is one cached artifact
type Entry struct {
	Key        string    `yaml:"key"`
	File       string    `yaml:"file"`
	Size       int64     `yaml:"size"`
	Created    time.Time `yaml:"created"`
	LastAccess time.Time `yaml:"last_access"`
}

// Stats tracks cache performance
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// Cache is a directory of artifacts with a YAML index. Least recently used
// entries are evicted once the total size passes MaxSize.
type Cache struct {
	mu      sync.Mutex
	dir     string
	maxSize int64
	entries map[string]*Entry
	stats   Stats
}

// DefaultMaxSize bounds the cache at 256 MB
const DefaultMaxSize = 256 << 20

// New opens the cache in dir, creating it if needed. A missing or corrupt
// index starts the cache empty.
func New(dir string, maxSize int64) (*Cache, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	c := &Cache{dir: dir, maxSize: maxSize, entries: make(map[string]*Entry)}
	c.loadIndex()
	return c, nil
}

// Key hashes inputs into a cache key. Each input is length-prefixed so
// ("ab","c") and ("a","bc") differ.
func Key(inputs ...string) string {
	h := sha256.New()
	for _, in := range inputs {
		fmt.Fprintf(h, "%d:", len(in))
		h.Write([]byte(in))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the artifact stored under key
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	data, err := os.ReadFile(filepath.Join(c.dir, e.File))
	if err != nil {
		// artifact vanished from under the index
		delete(c.entries, key)
		c.stats.Misses++
		c.saveIndex()
		return nil, false
	}
	e.LastAccess = time.Now()
	c.stats.Hits++
	c.saveIndex()
	return data, true
}

// Put stores data under key, evicting old entries to stay under the size
// limit
func (c *Cache) Put(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	file := key
	if len(file) > 16 {
		file = file[:16]
	}
	file += ".bin"
	if err := os.WriteFile(filepath.Join(c.dir, file), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	now := time.Now()
	c.entries[key] = &Entry{Key: key, File: file, Size: int64(len(data)), Created: now, LastAccess: now}
	c.evict(key)
	return c.saveIndex()
}

// Len is the number of cached entries
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit, miss and eviction counts
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Clear removes every entry
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		os.Remove(filepath.Join(c.dir, e.File))
		delete(c.entries, key)
	}
	return c.saveIndex()
}

// evict drops least recently used entries, never keep, until the cache fits
func (c *Cache) evict(keep string) {
	var total int64
	order := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		total += e.Size
		order = append(order, e)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].LastAccess.Before(order[j].LastAccess) })

	for _, e := range order {
		if total <= c.maxSize {
			return
		}
		if e.Key == keep {
			continue
		}
		os.Remove(filepath.Join(c.dir, e.File))
		delete(c.entries, e.Key)
		total -= e.Size
		c.stats.Evictions++
	}
}

func (c *Cache) loadIndex() {
	data, err := os.ReadFile(filepath.Join(c.dir, indexFile))
	if err != nil {
		return
	}
	var entries []*Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return
	}
	for _, e := range entries {
		c.entries[e.Key] = e
	}
}

func (c *Cache) saveIndex() error {
	entries := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, indexFile), data, 0644)
}
