// File: resolver.go
// Title: Time Zone Resolver
// Description: Resolves identifiers and offsets to shared zone values and
//              keeps the current, default and autoupdating zones.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package zone

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/log"
	"github.com/msto63/chrono/internal/cache"
)

// offsetCacheStep is the alignment an offset needs to be cached. Arbitrary
// offsets are built on every call so the cache stays small.
const offsetCacheStep = 1800

// preloadConcurrency bounds parallel zone loads in Preload.
const preloadConcurrency = 8

// Loader loads a named zone from the zone database.
type Loader func(id string) (*time.Location, error)

// ChangeCounter reports a generation that increases whenever the host's
// zone configuration may have changed.
type ChangeCounter interface {
	Generation() uint64
}

// Resolver caches zones and tracks the process current and default zones.
// The zero value is not usable; create one with NewResolver.
type Resolver struct {
	source  Source
	loader  Loader
	counter ChangeCounter
	logger  *log.Logger

	named   *cache.Cache[string, Zone]
	offsets *cache.Cache[int, Zone]

	mu         sync.Mutex
	current    Zone
	currentGen uint64
	defaultZ   Zone
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSource sets where the current zone identifier comes from.
func WithSource(s Source) Option {
	return func(r *Resolver) { r.source = s }
}

// WithLoader replaces time.LoadLocation.
func WithLoader(l Loader) Option {
	return func(r *Resolver) { r.loader = l }
}

// WithChangeCounter makes Current recompute when the counter's generation
// moves. Without a counter the current zone is computed once.
func WithChangeCounter(c ChangeCounter) Option {
	return func(r *Resolver) { r.counter = c }
}

// WithLogger sets the logger for cache misses and zone changes.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a resolver reading the system zone by default.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		source:  NewSystemSource(),
		loader:  time.LoadLocation,
		named:   cache.New[string, Zone](0),
		offsets: cache.New[int, Zone](0),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.GetDefault().WithName("zone")
	}
	return r
}

var (
	defaultResolver     *Resolver
	defaultResolverOnce sync.Once
)

// DefaultResolver returns the process-wide resolver.
func DefaultResolver() *Resolver {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewResolver()
	})
	return defaultResolver
}

// Named resolves a zone identifier. GMT and UTC names with an offset are
// resolved as fixed offsets.
func (r *Resolver) Named(id string) (Zone, error) {
	if seconds, ok := ParseGMTName(id); ok {
		return r.Offset(seconds)
	}
	if id == "" {
		return nil, chronoerr.New("empty zone identifier").
			WithCode(chronoerr.CodeUnknownZone).
			WithOperation("zone.Named")
	}

	return r.named.GetOrSet(id, func() (Zone, error) {
		loc, err := r.loader(id)
		if err != nil {
			return nil, chronoerr.Wrap(err, "unknown time zone").
				WithCode(chronoerr.CodeUnknownZone).
				WithOperation("zone.Named").
				WithDetail("identifier", id)
		}
		r.logger.Debug("Loaded time zone", log.String("identifier", id))
		return namedZone{id: id, loc: loc}, nil
	})
}

// Offset resolves a fixed offset in seconds east of GMT.
func (r *Resolver) Offset(seconds int) (Zone, error) {
	if seconds%offsetCacheStep != 0 {
		return Fixed(seconds)
	}
	return r.offsets.GetOrSet(seconds, func() (Zone, error) {
		return Fixed(seconds)
	})
}

// Current returns the host's zone. It is recomputed when the change
// counter's generation differs from the one seen at the last computation.
// An unknown identifier yields GMT.
func (r *Resolver) Current() Zone {
	var gen uint64
	if r.counter != nil {
		gen = r.counter.Generation()
	}

	r.mu.Lock()
	if r.current != nil && (r.counter == nil || gen == r.currentGen) {
		z := r.current
		r.mu.Unlock()
		return z
	}
	changed := r.current != nil
	r.mu.Unlock()

	id := r.source.CurrentIdentifier()
	if changed {
		// The zone file may have been rewritten under the same identifier.
		r.named.Delete(id)
	}
	z, err := r.Named(id)
	if err != nil {
		r.logger.WarnWithErr("Current time zone unknown, using GMT", err, log.String("identifier", id))
		z = GMT
	}

	r.mu.Lock()
	previous := r.current
	r.current = z
	r.currentGen = gen
	r.mu.Unlock()

	if previous != nil && !Equal(previous, z) {
		r.logger.Info("Current time zone changed",
			log.String("from", previous.Identifier()),
			log.String("to", z.Identifier()))
	}
	return z
}

// Default returns the zone set with SetDefault, or Current.
func (r *Resolver) Default() Zone {
	r.mu.Lock()
	z := r.defaultZ
	r.mu.Unlock()
	if z != nil {
		return z
	}
	return r.Current()
}

// SetDefault overrides the default zone. A nil zone restores Current.
func (r *Resolver) SetDefault(z Zone) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultZ = z
}

// ResetDefault makes Default follow Current again.
func (r *Resolver) ResetDefault() {
	r.SetDefault(nil)
}

// Autoupdating returns a zone that reads Current on every call.
func (r *Resolver) Autoupdating() Zone {
	return autoupdatingZone{r: r}
}

// Preload resolves ids concurrently so later lookups hit the cache. It
// returns the first error.
func (r *Resolver) Preload(ctx context.Context, ids ...string) error {
	timer := r.logger.StartTimer("zone preload").WithField("zones", len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := r.Named(id)
			return err
		})
	}
	err := g.Wait()
	timer.StopWithError(err)
	return err
}

// CacheStats returns hit statistics of the named and offset caches.
func (r *Resolver) CacheStats() (named, offsets cache.Stats) {
	return r.named.Stats(), r.offsets.Stats()
}
