// ABOUTME: SQLite-based cache implementation for a cache that survives restarts
// ABOUTME: Single key/value table with epoch expiry and a background cleanup loop

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"

	coreerrors "wikiscroll-api/core/errors"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// cleanupInterval is how often expired rows are purged.
const cleanupInterval = time.Minute

// Client implements the Cache interface using SQLite
type Client struct {
	db   *sql.DB
	done chan struct{}
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to open SQLite database")
	}

	if err := db.Ping(); err != nil {
		return nil, coreerrors.WrapError(err, "failed to connect to SQLite database")
	}

	client := &Client{
		db:   db,
		done: make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		return nil, coreerrors.WrapError(err, "failed to initialize schema")
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	query := "SELECT value FROM cache WHERE key = ? AND expiry > ?"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, ErrCacheMiss
	}

	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to get value")
	}

	return value, nil
}

// Set stores a value in the cache with TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	// ttl 0 means no expiration; store a far-future expiry.
	expiry := int64(1<<62 - 1)
	if ttl != 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	query := `
		INSERT OR REPLACE INTO cache (key, value, expiry)
		VALUES (?, ?, ?)
	`

	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return coreerrors.WrapError(err, "failed to set value")
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key); err != nil {
		return coreerrors.WrapError(err, "failed to delete value")
	}

	return nil
}

// Close stops the cleanup routine and closes the database.
func (c *Client) Close() error {
	close(c.done)
	return c.db.Close()
}

// cleanupRoutine periodically removes expired rows.
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = c.db.Exec("DELETE FROM cache WHERE expiry <= ?", time.Now().Unix())
		case <-c.done:
			return
		}
	}
}
