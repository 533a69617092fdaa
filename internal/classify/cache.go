package classify

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

// Cache is the verdict cache port. Absence of a cache never changes
// classification results, only latency and service cost.
type Cache interface {
	Get(key string) (*models.Verdict, bool)
	Set(key string, verdict *models.Verdict, ttl time.Duration) error
}

// SQLiteCache stores verdicts in the ai_classification_cache table with a
// per-entry expiry.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache creates a verdict cache backed by the given database.
func NewSQLiteCache(db *sql.DB) *SQLiteCache {
	return &SQLiteCache{db: db}
}

// Get returns the cached verdict for key when present and unexpired.
func (c *SQLiteCache) Get(key string) (*models.Verdict, bool) {
	var payload string
	err := c.db.QueryRow(
		"SELECT payload FROM ai_classification_cache WHERE cache_key = ? AND expires_at > ?",
		key, time.Now().Unix(),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Printf("[SQLiteCache] Lookup failed: %v", err)
		return nil, false
	}

	var verdict models.Verdict
	if err := json.Unmarshal([]byte(payload), &verdict); err != nil {
		log.Printf("[SQLiteCache] Corrupt cache entry for %s: %v", key, err)
		return nil, false
	}
	return &verdict, true
}

// Set stores a verdict under key with the given TTL, replacing any previous
// entry.
func (c *SQLiteCache) Set(key string, verdict *models.Verdict, ttl time.Duration) error {
	payload, err := json.Marshal(verdict)
	if err != nil {
		return err
	}

	_, err = c.db.Exec(
		`INSERT INTO ai_classification_cache (cache_key, payload, expires_at, created_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`,
		key, string(payload), time.Now().Add(ttl).Unix(),
	)
	return err
}

// Purge removes expired entries. Callers may run it opportunistically; the
// TTL check in Get keeps correctness without it.
func (c *SQLiteCache) Purge() error {
	_, err := c.db.Exec("DELETE FROM ai_classification_cache WHERE expires_at <= ?", time.Now().Unix())
	return err
}
