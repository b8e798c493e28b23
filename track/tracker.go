package track

import (
	"cmp"
	"sync"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/nearsyh/go-ranges/model"
	"go.uber.org/zap"
)

// Tracker folds observed values into one Range per named series.
//
// Range itself is a plain value with no synchronization. The Tracker owns
// the locking, so Observe, Get, Names and Overall are safe to call from
// multiple goroutines.
type Tracker[T cmp.Ordered] struct {
	m sync.RWMutex

	series *treemap.Map[string, model.Range[T]]
	log    *zap.Logger
}

func New[T cmp.Ordered](opts ...Option) *Tracker[T] {
	config := &Config{
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(config)
	}
	return &Tracker[T]{
		series: treemap.New[string, model.Range[T]](),
		log:    config.Logger,
	}
}

// Observe folds values into the series' range. The first observation seeds
// the range at the first value; later ones only widen it. Observing no
// values is a no-op.
func (t *Tracker[T]) Observe(name string, values ...T) {
	if len(values) == 0 {
		return
	}

	t.m.Lock()
	defer t.m.Unlock()

	cur, ok := t.series.Get(name)
	if !ok {
		seeded := model.New(values[0], values[0]).Encapsulate(values[1:]...)
		t.series.Put(name, seeded)
		t.log.Debug("New series", zap.String("series", name), zap.Stringer("range", seeded))
		return
	}

	next := cur.Encapsulate(values...)
	if !next.Equal(cur) {
		t.series.Put(name, next)
		t.log.Debug("Series widened", zap.String("series", name), zap.Stringer("range", next))
	}
}

// Get returns the series' range, and whether the series has been observed.
func (t *Tracker[T]) Get(name string) (model.Range[T], bool) {
	t.m.RLock()
	defer t.m.RUnlock()

	return t.series.Get(name)
}

// Names returns all observed series names in lexicographic order.
func (t *Tracker[T]) Names() []string {
	t.m.RLock()
	defer t.m.RUnlock()

	return t.series.Keys()
}

// Overall returns a range covering every observed series, and false if
// nothing has been observed yet.
func (t *Tracker[T]) Overall() (model.Range[T], bool) {
	t.m.RLock()
	defer t.m.RUnlock()

	iter := t.series.Iterator()
	if !iter.Next() {
		return model.Range[T]{}, false
	}
	ret := iter.Value()
	for iter.Next() {
		ret = ret.EncapsulateRanges(iter.Value())
	}
	return ret, true
}

type Config struct {
	Logger *zap.Logger
}

type Option func(*Config)

func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
