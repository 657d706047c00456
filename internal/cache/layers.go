package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// tier is one byte-addressed level of the report store. Tiers hold encoded
// reports; the Store owns encoding and decoding.
type tier interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// memoryTier keeps recently audited reports in process memory, backed by
// go-cache with its own expiry janitor.
type memoryTier struct {
	entries *gocache.Cache
}

func newMemoryTier(ttl time.Duration) *memoryTier {
	return &memoryTier{entries: gocache.New(ttl, 10*time.Minute)}
}

func (t *memoryTier) Get(key string) ([]byte, bool) {
	if val, found := t.entries.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

func (t *memoryTier) Set(key string, value []byte, ttl time.Duration) error {
	t.entries.Set(key, value, ttl)
	return nil
}

func (t *memoryTier) Delete(key string) error {
	t.entries.Delete(key)
	return nil
}

func (t *memoryTier) Clear() error {
	t.entries.Flush()
	return nil
}

// diskTier persists reports across runs, one file per audited account file,
// so re-auditing unchanged input skips revalidation.
type diskTier struct {
	dir string
	ttl time.Duration
}

func newDiskTier(dir string, ttl time.Duration) *diskTier {
	return &diskTier{dir: dir, ttl: ttl}
}

// diskEntry is the on-disk envelope around an encoded report.
type diskEntry struct {
	Report     []byte    `json:"report"`
	StaleAfter time.Time `json:"stale_after"`
}

func (t *diskTier) Get(key string) ([]byte, bool) {
	path := t.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if time.Now().After(entry.StaleAfter) {
		_ = os.Remove(path)
		return nil, false
	}
	return entry.Report, true
}

func (t *diskTier) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = t.ttl
	}

	data, err := json.Marshal(diskEntry{
		Report:     value,
		StaleAfter: time.Now().Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := os.MkdirAll(t.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(t.path(key), data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

func (t *diskTier) Delete(key string) error {
	err := os.Remove(t.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (t *diskTier) Clear() error {
	return os.RemoveAll(t.dir)
}

func (t *diskTier) path(key string) string {
	return filepath.Join(t.dir, key+".report")
}
