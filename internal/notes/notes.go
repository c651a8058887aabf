// Package notes holds the dashboard's scratch pad. The text is written
// through to a key/value store on every change.
package notes

import (
	"context"
	"fmt"
	"sync"
)

// Key is the storage key the pad is saved under.
const Key = "studyBuddyNotes"

// Storage is a string key/value store. *store.KV satisfies it.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Pad is the notes pad.
type Pad struct {
	storage Storage

	mu   sync.Mutex
	text string
}

// NewPad creates a pad backed by s. Call Load to read saved text.
func NewPad(s Storage) *Pad {
	return &Pad{storage: s}
}

// Load reads the saved text. A missing key leaves the pad empty.
func (p *Pad) Load(ctx context.Context) error {
	v, _, err := p.storage.Get(ctx, Key)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	p.mu.Lock()
	p.text = v
	p.mu.Unlock()
	return nil
}

// Set replaces the text and saves it. The in-memory text is updated even
// when saving fails.
func (p *Pad) Set(ctx context.Context, text string) error {
	p.mu.Lock()
	p.text = text
	p.mu.Unlock()

	if err := p.storage.Set(ctx, Key, text); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

// Clear empties the pad.
func (p *Pad) Clear(ctx context.Context) error {
	return p.Set(ctx, "")
}

// Text returns the current text.
func (p *Pad) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

// MemoryStorage is an in-memory Storage.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
