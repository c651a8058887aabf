package notes

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamlowkey/studybuddy/internal/store"
)

var _ Storage = (*store.KV)(nil)

func TestPad_LoadMissingIsEmpty(t *testing.T) {
	p := NewPad(NewMemoryStorage())
	require.NoError(t, p.Load(context.Background()))
	assert.Equal(t, "", p.Text())
}

func TestPad_WritesThroughOnEveryChange(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStorage()
	p := NewPad(mem)

	for _, text := range []string{"E", "En", "Entropy = dQ/T"} {
		require.NoError(t, p.Set(ctx, text))
		saved, ok, _ := mem.Get(ctx, Key)
		assert.True(t, ok)
		assert.Equal(t, text, saved)
	}

	// A fresh pad over the same storage sees the saved text.
	again := NewPad(mem)
	require.NoError(t, again.Load(ctx))
	assert.Equal(t, "Entropy = dQ/T", again.Text())

	require.NoError(t, again.Clear(ctx))
	saved, _, _ := mem.Get(ctx, Key)
	assert.Empty(t, saved)
	assert.Empty(t, again.Text())
}

type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStorage) Set(context.Context, string, string) error         { return f.err }

func TestPad_StorageErrors(t *testing.T) {
	boom := errors.New("disk full")
	p := NewPad(failingStorage{err: boom})

	err := p.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	err = p.Set(context.Background(), "kept in memory")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "kept in memory", p.Text())
}

func TestPad_SQLiteStorage(t *testing.T) {
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	p := NewPad(s.KV())
	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.Set(ctx, "revise optics"))

	reloaded := NewPad(s.KV())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, "revise optics", reloaded.Text())
}
