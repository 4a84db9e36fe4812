package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

// Generator hands out lexicographically sortable ULIDs. IDs produced within
// the same millisecond stay ordered thanks to the monotonic entropy source,
// which is what lets the store break createdAt ties by id.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewGenerator returns a Generator reading time from now. A nil now uses the
// wall clock.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0), // Max Monotonic Window
		now:     now,
	}
}

// Next returns a new ID stamped with the generator's clock.
func (g *Generator) Next() string {
	return g.At(g.now())
}

// At returns a new ID stamped with t.
func (g *Generator) At(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t.UTC()), g.entropy).String()
}

var (
	globalOnce sync.Once
	global     *Generator
)

func defaultGenerator() *Generator {
	globalOnce.Do(func() { global = NewGenerator(nil) })
	return global
}

// New returns a new ULID using the current UTC time.
func New() string {
	return defaultGenerator().Next()
}

// NewAt generates an ID at the provided time, useful for tests and seeding.
func NewAt(t time.Time) string {
	return defaultGenerator().At(t)
}

// Parse validates s as a ULID and returns it trimmed.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return "", ErrInvalid
	}
	return s, nil
}

// Time extracts the embedded UTC timestamp from id, or the zero time when id
// is not a ULID.
func Time(id string) time.Time {
	u, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}
