package pages

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// StaticLoader keeps the first successful load for each locale and serves it
// until Rebuild is called. Failed loads are not kept, so the next request retries.
// Concurrent cold loads of one locale share a single call to the inner loader.
type StaticLoader[T any] struct {
	inner Loader[T]
	group singleflight.Group

	mu    sync.RWMutex
	gen   uint64
	props map[string]Props[T]
}

func NewStaticLoader[T any](inner Loader[T]) *StaticLoader[T] {
	return &StaticLoader[T]{
		inner: inner,
		props: make(map[string]Props[T]),
	}
}

func (l *StaticLoader[T]) Load(ctx context.Context, locale string) (Props[T], error) {
	l.mu.RLock()
	props, ok := l.props[locale]
	gen := l.gen
	l.mu.RUnlock()
	if ok {
		return props, nil
	}

	// the generation is part of the key so a load started before Rebuild is never joined after it
	key := strconv.FormatUint(gen, 10) + "/" + locale
	v, err, _ := l.group.Do(key, func() (any, error) {
		props, err := l.inner.Load(ctx, locale)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.gen != gen {
			// rebuilt while loading: serve this caller but keep nothing
			return props, nil
		}
		if kept, ok := l.props[locale]; ok {
			return kept, nil
		}
		l.props[locale] = props
		return props, nil
	})
	if err != nil {
		return Props[T]{}, err
	}
	return v.(Props[T]), nil
}

// Rebuild drops every kept result. Loads still in flight finish but are not kept.
func (l *StaticLoader[T]) Rebuild() {
	l.mu.Lock()
	l.gen++
	l.props = make(map[string]Props[T])
	l.mu.Unlock()
}

// Warm loads every locale up front. It stops at the first failure.
func (l *StaticLoader[T]) Warm(ctx context.Context, locales []string) error {
	for _, locale := range locales {
		if _, err := l.Load(ctx, locale); err != nil {
			return err
		}
	}
	return nil
}
