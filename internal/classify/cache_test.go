package classify

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/greenroute/carbon-backend-go/internal/models"
)

func newCacheDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE ai_classification_cache (
			cache_key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	require.NoError(t, err)
	return db
}

func TestSQLiteCacheRoundTrip(t *testing.T) {
	cache := NewSQLiteCache(newCacheDB(t))

	verdict := &models.Verdict{
		TransportMode:    models.ModeCar,
		Confidence:       0.92,
		CarbonEmissionKg: 2.1,
		Suggestions:      []string{"Try the train"},
		Source:           SourceAI,
	}
	require.NoError(t, cache.Set("key-1", verdict, time.Hour))

	got, ok := cache.Get("key-1")
	require.True(t, ok)
	assert.Equal(t, verdict, got)
}

func TestSQLiteCacheMiss(t *testing.T) {
	cache := NewSQLiteCache(newCacheDB(t))

	_, ok := cache.Get("absent")
	assert.False(t, ok)
}

func TestSQLiteCacheExpiry(t *testing.T) {
	cache := NewSQLiteCache(newCacheDB(t))

	verdict := &models.Verdict{TransportMode: models.ModeBus, Confidence: 0.8, Source: SourceAI}
	require.NoError(t, cache.Set("key-1", verdict, -time.Minute))

	_, ok := cache.Get("key-1")
	assert.False(t, ok, "expired entries must not be served")

	require.NoError(t, cache.Purge())
}

func TestSQLiteCacheOverwrite(t *testing.T) {
	cache := NewSQLiteCache(newCacheDB(t))

	first := &models.Verdict{TransportMode: models.ModeBus, Confidence: 0.8, Source: SourceAI}
	second := &models.Verdict{TransportMode: models.ModeMRT, Confidence: 0.9, Source: SourceAI}

	require.NoError(t, cache.Set("key-1", first, time.Hour))
	require.NoError(t, cache.Set("key-1", second, time.Hour))

	got, ok := cache.Get("key-1")
	require.True(t, ok)
	assert.Equal(t, models.ModeMRT, got.TransportMode)
}
