// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datelist

import (
	"context"
	"iter"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// produce waits for the configured delay and then returns the ISO8601
// form of the i'th date.
func (c *Collection) produce(ctx context.Context, i int) (string, error) {
	if err := sleep(ctx, c.opts.delay); err != nil {
		return "", err
	}
	return FormatISO8601(c.items[i]), nil
}

// Delay returns the delay incurred before each item is produced by the
// asynchronous iterators.
func (c *Collection) Delay() time.Duration {
	return c.opts.delay
}

// IterateAsync returns a sequence of the ISO8601 forms of the dates in the
// collection, in order. The production of each item is preceded by the
// collection's delay and items are produced strictly one at a time. If the
// context is canceled whilst waiting, the context's error is yielded and
// the sequence ends. Each call to the returned sequence starts from the
// first date.
func (c *Collection) IterateAsync(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := ctxlog.Logger(ctx)
		for i := range c.items {
			item, err := c.produce(ctx, i)
			if err != nil {
				logger.Debug("datelist: async iteration stopped", "index", i, "error", err)
				yield("", err)
				return
			}
			logger.Debug("datelist: async iteration", "index", i, "item", item)
			if !yield(item, nil) {
				return
			}
		}
	}
}

// AsyncScanner provides explicit iteration over the ISO8601 forms of
// the dates in a collection with the same delay and ordering as
// IterateAsync. Typical usage is:
//
//	sc := c.Scanner(ctx)
//	for sc.Scan() {
//		item := sc.Item()
//	}
//	if err := sc.Err(); err != nil {
//		...
//	}
type AsyncScanner struct {
	ctx  context.Context
	c    *Collection
	next int
	item string
	err  error
}

// Scanner returns a new AsyncScanner for the collection.
func (c *Collection) Scanner(ctx context.Context) *AsyncScanner {
	return &AsyncScanner{ctx: ctx, c: c}
}

// Scan waits for the next item and returns true if it is available via Item.
func (s *AsyncScanner) Scan() bool {
	if s.err != nil || s.next >= len(s.c.items) {
		return false
	}
	item, err := s.c.produce(s.ctx, s.next)
	if err != nil {
		s.err = err
		return false
	}
	s.item = item
	s.next++
	return true
}

// Item returns the current item.
func (s *AsyncScanner) Item() string {
	return s.item
}

// Err returns any error encountered by the scanner.
func (s *AsyncScanner) Err() error {
	return s.err
}

// AwaitAll produces every item concurrently and returns them in the
// collection's order once all have been produced. Since the per-item
// delays overlap, it completes after approximately one delay rather
// than one delay per item as is the case for IterateAsync.
func (c *Collection) AwaitAll(ctx context.Context) ([]string, error) {
	results := make([]string, len(c.items))
	if len(c.items) == 0 {
		return results, nil
	}
	logger := ctxlog.Logger(ctx)
	logger.Debug("datelist: awaiting all", "items", len(c.items), "delay", c.opts.delay)
	g, gctx := errgroup.WithContext(ctx)
	for i := range c.items {
		g.Go(func() error {
			item, err := c.produce(gctx, i)
			if err != nil {
				return err
			}
			results[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Debug("datelist: await all failed", "error", err)
		return nil, err
	}
	logger.Debug("datelist: awaited all", "items", len(results))
	return results, nil
}

// Collect drains seq, returning all of the items it yields or the
// first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
