package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
)

// LoadState tracks one feed load. Loading is the only non-terminal state.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateEmpty   LoadState = "empty"
	StateFailed  LoadState = "failed"
)

// Terminal reports whether no further transition can happen.
func (s LoadState) Terminal() bool {
	return s == StateLoaded || s == StateEmpty || s == StateFailed
}

// Unavailable reports whether the panel shows the "unavailable" placeholder.
func (s LoadState) Unavailable() bool {
	return s == StateEmpty || s == StateFailed
}

// Result is the outcome of one load.
type Result struct {
	ID       string
	State    LoadState
	Posts    []Post
	Err      error
	Duration time.Duration
}

// Loader runs one fetch per call and degrades failures to StateFailed.
type Loader struct {
	fetcher Fetcher
	limit   int
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{
		fetcher: fetcher,
		limit:   MaxPosts,
	}
}

// Load fetches once and never returns an error; failures are logged and
// reported through Result.State. Empty and failed loads are kept apart so
// monitoring can tell a quiet feed from a broken one.
func (l *Loader) Load(ctx context.Context) Result {
	start := time.Now()
	res := Result{
		ID:    ulid.Make().String(),
		State: StateLoading,
	}

	posts, err := l.fetcher.Fetch(ctx)
	res.Duration = time.Since(start)

	switch {
	case err != nil:
		res.State = StateFailed
		res.Err = err
		slog.Error("feed load failed", "load_id", res.ID, "error", err, "duration", res.Duration)
	case len(posts) == 0:
		res.State = StateEmpty
		slog.Warn("feed returned no posts", "load_id", res.ID, "duration", res.Duration)
	default:
		res.State = StateLoaded
		res.Posts = Truncate(posts, l.limit)
		slog.Info("feed loaded",
			"load_id", res.ID,
			"received", len(posts),
			"shown", len(res.Posts),
			"duration", res.Duration,
		)
	}

	return res
}
