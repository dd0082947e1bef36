// Package session holds client-side authentication state: a file-backed
// key/value bridge scoped to the machine session, and a store with a
// read/write/subscribe contract on top of it.
package session

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
)

// Bridge wraps a session-scoped key/value file with JSON (de)serialization
// and safe failure: Get never errors, Set and Remove are silent no-ops
// when the store is unavailable. An empty path disables the bridge.
type Bridge struct {
	path string
	log  zerolog.Logger
}

// NewBridge creates a bridge over the given file path.
func NewBridge(path string, log zerolog.Logger) *Bridge {
	return &Bridge{
		path: path,
		log:  log.With().Str("component", "session_bridge").Logger(),
	}
}

// Get decodes the value stored under key into target. It returns false
// on a missing key, a missing or unreadable file, or a decode failure.
func (b *Bridge) Get(key string, target any) bool {
	if b.path == "" {
		return false
	}
	raw, ok := b.read()[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		b.log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable session value")
		return false
	}
	return true
}

// Set stores value under key. Serialization or write failures are
// logged and swallowed.
func (b *Bridge) Set(key string, value any) {
	if b.path == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		b.log.Warn().Err(err).Str("key", key).Msg("Session value not serializable")
		return
	}
	entries := b.read()
	entries[key] = raw
	b.write(entries)
}

// Remove deletes the value stored under key.
func (b *Bridge) Remove(key string) {
	if b.path == "" {
		return
	}
	entries := b.read()
	if _, ok := entries[key]; !ok {
		return
	}
	delete(entries, key)
	b.write(entries)
}

func (b *Bridge) read() map[string]json.RawMessage {
	entries := make(map[string]json.RawMessage)
	data, err := os.ReadFile(b.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt store; treat as empty rather than failing.
		return make(map[string]json.RawMessage)
	}
	return entries
}

func (b *Bridge) write(entries map[string]json.RawMessage) {
	data, err := json.Marshal(entries)
	if err != nil {
		b.log.Warn().Err(err).Msg("Session store not serializable")
		return
	}
	if err := os.WriteFile(b.path, data, 0o600); err != nil {
		b.log.Warn().Err(err).Str("path", b.path).Msg("Session store write failed")
	}
}
