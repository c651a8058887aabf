package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamlowkey/studybuddy/internal/llm"
)

func TestBatch_ResultsInInputOrder(t *testing.T) {
	mock := &llm.MockProvider{DefaultContent: []byte(`[{"title":"Review","type":"Notes"}]`)}
	f := New(mock, Config{APIKey: "real-key", Timeout: time.Second})

	var profiles []Profile
	for i := range 10 {
		profiles = append(profiles, Profile{Name: fmt.Sprintf("learner-%d", i), WeakTopics: []string{"Optics"}})
	}

	results := f.Batch(context.Background(), profiles, 3)
	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, profiles[i].Name, r.Profile.Name)
		assert.IsType(t, Ready{}, r.State)
	}
	assert.Equal(t, 10, mock.CallCount())
	assert.IsType(t, Idle{}, f.State(), "batch leaves tracked state alone")
}

func TestBatch_MixedOutcomes(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockText(`[{"title":"ok","type":"Video"}]`),
		llm.MockText(`nope`),
	)
	f := New(mock, Config{APIKey: "real-key", Timeout: time.Second})

	results := f.Batch(context.Background(), []Profile{{Name: "a"}, {Name: "b"}}, 2)
	require.Len(t, results, 2)

	var ready, failed int
	for _, r := range results {
		switch r.State.(type) {
		case Ready:
			ready++
		case Failed:
			failed++
			assert.Len(t, Suggestions(r.State), 3)
		}
	}
	assert.Equal(t, 1, ready)
	assert.Equal(t, 1, failed)
}

func TestBatch_OfflineMode(t *testing.T) {
	f := New(nil, Config{})
	results := f.Batch(context.Background(), []Profile{{Name: "a"}}, 0)
	require.Len(t, results, 1)
	ready, ok := results[0].State.(Ready)
	require.True(t, ok)
	assert.True(t, ready.MissingCredential)
}
