package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/restmap-cli/restmap/core/logger"
	"github.com/restmap-cli/restmap/core/models"
)

// ReportCache keeps FileReports for controller files that have not changed
// since they were last scanned. Entries are validated against the file's
// mtime and content hash, so watch mode only re-parses what actually moved.
type ReportCache struct {
	entries map[string]*models.CacheEntry
	config  *CacheConfig
	metrics *CacheMetrics
	mutex   sync.RWMutex
}

var (
	globalCache *ReportCache
	cacheOnce   sync.Once
)

func GetCache() *ReportCache {
	cacheOnce.Do(func() {
		globalCache = NewReportCache(DefaultCacheConfig())
	})
	return globalCache
}

func NewReportCache(config *CacheConfig) *ReportCache {
	cache := &ReportCache{
		entries: make(map[string]*models.CacheEntry),
		config:  config,
		metrics: &CacheMetrics{},
		mutex:   sync.RWMutex{},
	}

	logger.Debug("Created new report cache with config: MaxEntries=%d, TTL=%v",
		config.MaxEntries, config.DefaultTTL)

	return cache
}

func (rc *ReportCache) ValidateAndGet(filePath string) (*models.FileReport, bool) {
	rc.mutex.RLock()
	entry, exists := rc.entries[filePath]
	rc.mutex.RUnlock()

	if !exists {
		rc.incrementMisses()
		logger.Debug("Cache miss for %s - entry not found", filePath)
		return nil, false
	}

	valid, err := entry.IsValid()
	if err != nil {
		logger.Debug("Cache validation error for %s: %v", filePath, err)
		rc.InvalidateFile(filePath)
		rc.incrementMisses()
		return nil, false
	}

	if !valid {
		logger.Debug("Cache miss for %s - file modified", filePath)
		rc.InvalidateFile(filePath)
		rc.incrementMisses()
		return nil, false
	}

	if rc.isExpired(entry) {
		logger.Debug("Cache miss for %s - entry expired", filePath)
		rc.InvalidateFile(filePath)
		rc.incrementMisses()
		return nil, false
	}

	rc.incrementHits()
	logger.Debug("Cache hit for %s", filePath)
	return entry.Report, true
}

func (rc *ReportCache) Set(filePath string, report *models.FileReport) error {
	entry, err := models.NewCacheEntry(filePath, report)
	if err != nil {
		return fmt.Errorf("failed to create cache entry: %w", err)
	}

	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	if len(rc.entries) >= rc.config.MaxEntries {
		logger.Debug("Cache full, evicting oldest entries")
		rc.evictOldest()
	}

	rc.entries[filePath] = entry
	logger.Debug("Cached scan results for %s", filePath)
	return nil
}

func (rc *ReportCache) InvalidateFile(filePath string) {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	if _, exists := rc.entries[filePath]; exists {
		delete(rc.entries, filePath)
		rc.metrics.Invalidations++
		logger.Debug("Invalidated cache entry for %s", filePath)
	}
}

func (rc *ReportCache) Clear() {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	entriesCount := len(rc.entries)
	rc.entries = make(map[string]*models.CacheEntry)
	rc.metrics.Invalidations += int64(entriesCount)
	logger.Info("Cleared entire cache, invalidated %d entries", entriesCount)
}

func (rc *ReportCache) GetMetrics() *CacheMetrics {
	rc.mutex.RLock()
	defer rc.mutex.RUnlock()

	metrics := *rc.metrics
	metrics.TotalEntries = len(rc.entries)
	metrics.CalculateHitRate()
	return &metrics
}

func (rc *ReportCache) LogStats() {
	metrics := rc.GetMetrics()
	logger.Debug("Cache stats: Hits=%d, Misses=%d, Hit Rate=%.1f%%, Total Entries=%d, Invalidations=%d",
		metrics.Hits, metrics.Misses, metrics.HitRate, metrics.TotalEntries, metrics.Invalidations)
}

func (rc *ReportCache) isExpired(entry *models.CacheEntry) bool {
	return time.Since(entry.CreatedAt) > rc.config.DefaultTTL
}

func (rc *ReportCache) evictOldest() {
	var oldestPath string
	var oldestTime time.Time

	for path, entry := range rc.entries {
		if oldestPath == "" || entry.CreatedAt.Before(oldestTime) {
			oldestPath = path
			oldestTime = entry.CreatedAt
		}
	}

	if oldestPath != "" {
		delete(rc.entries, oldestPath)
		rc.metrics.Invalidations++
		logger.Debug("Evicted oldest cache entry: %s", oldestPath)
	}
}

func (rc *ReportCache) incrementHits() {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()
	rc.metrics.Hits++
}

func (rc *ReportCache) incrementMisses() {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()
	rc.metrics.Misses++
}
