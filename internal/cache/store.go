package cache

import (
	"fmt"
	"time"

	"github.com/credlogic/metro2/internal/model"
)

// Store is the report cache the pipeline talks to. It speaks compliance
// reports rather than bytes: lookups decode, writes encode, and a corrupt
// entry in either tier is dropped and treated as a miss. Memory is checked
// before disk; a disk hit is promoted so repeat lookups stay in process.
type Store struct {
	memory tier
	disk   tier
}

// NewStore creates a report store with an in-process tier and a disk tier
// under diskDir.
func NewStore(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *Store {
	return &Store{
		memory: newMemoryTier(memoryTTL),
		disk:   newDiskTier(diskDir, diskTTL),
	}
}

// Get returns the cached report for an account file's content key.
func (s *Store) Get(key string) (*model.ComplianceReport, bool) {
	if data, found := s.memory.Get(key); found {
		if report, err := DecodeReport(data); err == nil {
			return report, true
		}
		_ = s.memory.Delete(key)
	}

	data, found := s.disk.Get(key)
	if !found {
		return nil, false
	}
	report, err := DecodeReport(data)
	if err != nil {
		// drop the corrupt file so the next audit rewrites it
		_ = s.disk.Delete(key)
		return nil, false
	}
	_ = s.memory.Set(key, data, 0)
	return report, true
}

// Put stores a report in both tiers under their default TTLs.
func (s *Store) Put(key string, report *model.ComplianceReport) error {
	data, err := EncodeReport(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := s.memory.Set(key, data, 0); err != nil {
		return err
	}
	return s.disk.Set(key, data, 0)
}

// Delete evicts a report from both tiers.
func (s *Store) Delete(key string) error {
	_ = s.memory.Delete(key)
	return s.disk.Delete(key)
}

// Clear empties both tiers.
func (s *Store) Clear() error {
	_ = s.memory.Clear()
	return s.disk.Clear()
}
