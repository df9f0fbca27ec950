// Package screened tracks which candidates a search has already
// interviewed, so sampling-with-replacement sources never send the same
// candidate through the pipeline twice in one search.
package screened

// Tracker records seen candidate IDs. A tracker belongs to exactly one
// search loop and is not safe for concurrent use.
type Tracker interface {
	// SeenAndRecord checks whether id was seen and records it if not.
	// Returns true if id was already seen.
	SeenAndRecord(id string) bool

	// Size returns the number of recorded IDs.
	Size() int
}

const defaultMaxSize = 10_000

// Option applies a configuration option to the tracker.
type Option func(*tracker)

// WithMaxSize bounds how many IDs are retained; the oldest entries are
// evicted first once the bound is reached. Zero or negative means
// unbounded.
func WithMaxSize(n int) Option {
	return func(t *tracker) {
		t.maxSize = n
	}
}

// tracker implements Tracker with a map plus an insertion-order ring for
// bounded eviction.
type tracker struct {
	seen    map[string]struct{}
	order   []string
	next    int
	maxSize int
}

// New creates a tracker.
func New(opts ...Option) Tracker {
	t := &tracker{
		seen:    make(map[string]struct{}),
		maxSize: defaultMaxSize,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.maxSize > 0 {
		t.order = make([]string, t.maxSize)
	}
	return t
}

func (t *tracker) SeenAndRecord(id string) bool {
	if _, ok := t.seen[id]; ok {
		return true
	}

	if t.maxSize > 0 {
		if evict := t.order[t.next]; evict != "" {
			delete(t.seen, evict)
		}
		t.order[t.next] = id
		t.next = (t.next + 1) % t.maxSize
	}
	t.seen[id] = struct{}{}
	return false
}

func (t *tracker) Size() int {
	return len(t.seen)
}
