// Package recommend fetches AI study-resource suggestions for a learner's
// weak topics and tracks the panel state across overlapping fetches.
package recommend

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/teamlowkey/studybuddy/internal/llm"
)

// DefaultTimeout bounds a single request when Config.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// Purpose labels fetcher requests in the LLM event log.
const Purpose = "recommend"

// Config is injected at construction; the fetcher never reads the
// environment itself.
type Config struct {
	// APIKey is the credential of the configured provider. Blank or the
	// placeholder value means offline mode.
	APIKey string

	Timeout time.Duration
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l.With().Str("component", "recommend").Logger()
	}
}

// Fetcher produces suggestions and owns the current panel state.
type Fetcher struct {
	provider llm.Provider
	cfg      Config
	logger   zerolog.Logger

	mu       sync.Mutex
	seq      uint64
	accepted uint64
	state    State
}

// New creates a Fetcher. provider may be nil when no credential is
// configured; it is never called in that case.
func New(provider llm.Provider, cfg Config, opts ...Option) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	f := &Fetcher{
		provider: provider,
		cfg:      cfg,
		logger:   zerolog.Nop(),
		state:    Idle{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the currently accepted state.
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fetch runs one invocation for p and returns the state it produced. The
// result becomes the current state unless a later invocation has already
// been accepted, in which case it is discarded.
func (f *Fetcher) Fetch(ctx context.Context, p Profile) State {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.state = Loading{}
	f.mu.Unlock()

	log := f.logger.With().Uint64("seq", seq).Str("fetch_id", uuid.NewString()).Logger()
	log.Debug().Strs("weak_topics", p.WeakTopics).Msg("fetching suggestions")

	st := f.Resolve(ctx, p)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq < f.accepted {
		log.Debug().Uint64("accepted", f.accepted).Msg("discarding stale result")
		return st
	}
	f.accepted = seq
	f.state = st
	logOutcome(log, st)
	return st
}

// Resolve performs the fetch for p without touching the tracked state.
// It always returns Ready or Failed.
func (f *Fetcher) Resolve(ctx context.Context, p Profile) State {
	if f.provider == nil || !llm.IsUsableKey(f.cfg.APIKey) {
		return Ready{Suggestions: Fallback(), MissingCredential: true}
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	resp, err := f.provider.Generate(llm.WithPurpose(ctx, Purpose), llm.UserPrompt(BuildPrompt(p)))
	if err != nil {
		return Failed{Err: classify(err), Fallback: Fallback()}
	}

	list, err := Parse(resp.Text())
	if err != nil {
		return Failed{Err: classify(err), Fallback: Fallback()}
	}
	return Ready{Suggestions: list}
}

func logOutcome(log zerolog.Logger, st State) {
	switch s := st.(type) {
	case Ready:
		log.Debug().Int("count", len(s.Suggestions)).Bool("missing_credential", s.MissingCredential).Msg("suggestions ready")
	case Failed:
		log.Warn().Err(s.Err).Str("kind", s.Err.Kind.String()).Msg("fetch failed, showing fallback")
	}
}
