// ABOUTME: Charm KV client wrapper providing the on-device key-value store
// ABOUTME: Badger-backed local storage with optional cloud sync per write
package kv

import (
	"fmt"
	"os"
	"sync"

	charmkv "github.com/charmbracelet/charm/kv"
)

// Config holds charm KV client configuration.
type Config struct {
	Host     string
	DBName   string
	AutoSync bool
}

// DefaultConfig returns the local-first defaults: named database, no cloud
// sync unless asked for.
func DefaultConfig() Config {
	host := os.Getenv("CHARM_HOST")
	if host == "" {
		host = "cloud.charm.sh"
	}
	return Config{
		Host:     host,
		DBName:   "tend",
		AutoSync: false,
	}
}

// Client wraps charm KV for single-key blob storage.
type Client struct {
	kv     *charmkv.KV
	config Config
	mu     sync.Mutex
}

// Open opens (creating if needed) the named KV database.
func Open(cfg Config) (*Client, error) {
	// charm reads the host from the environment when opening
	os.Setenv("CHARM_HOST", cfg.Host)

	db, err := charmkv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	c := &Client{
		kv:     db,
		config: cfg,
	}

	// Pull remote data on startup when syncing is on
	if cfg.AutoSync {
		_ = db.Sync()
	}

	return c, nil
}

// Close closes the underlying database.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

func (c *Client) syncIfEnabled() {
	if c.config.AutoSync {
		_ = c.kv.Sync()
	}
}

// Set stores a value under key.
func (c *Client) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// Get retrieves a value by key. A missing key yields a nil value, not an
// error, because badger reports absence through the returned slice.
func (c *Client) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.kv.Get([]byte(key))
}

// Delete removes a key.
func (c *Client) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Delete([]byte(key)); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// Sync manually pushes/pulls against the charm cloud.
func (c *Client) Sync() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Sync()
}

// Reset wipes all local data.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}
