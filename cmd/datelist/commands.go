// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/datelist"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/message"
)

func (a *app) format(ctx context.Context, values any, args []string) error {
	fv := values.(*formatFlags)
	_, c, err := a.setup(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, c.DisplayString())
	return nil
}

func (a *app) iterate(ctx context.Context, values any, args []string) error {
	fv := values.(*iterateFlags)
	_, c, err := a.setup(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	for d := range c.Iterate() {
		fmt.Fprintln(a.out, d.Format(time.RFC3339))
	}
	return nil
}

func (a *app) stream(ctx context.Context, values any, args []string) error {
	fv := values.(*streamFlags)
	ctx, c, err := a.setup(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	start := time.Now()
	n := 0
	for item, err := range c.IterateAsync(ctx) {
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, item)
		n++
	}
	a.summarize(ctx, c, n, time.Since(start))
	return nil
}

func (a *app) await(ctx context.Context, values any, args []string) error {
	fv := values.(*awaitFlags)
	ctx, c, err := a.setup(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	start := time.Now()
	items, err := c.AwaitAll(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Fprintln(a.out, item)
	}
	a.summarize(ctx, c, len(items), time.Since(start))
	return nil
}

// summarize logs the number of items produced using the collection's
// locale for the count.
func (a *app) summarize(ctx context.Context, c *datelist.Collection, n int, took time.Duration) {
	p := message.NewPrinter(c.Locale().Tag())
	ctxlog.Logger(ctx).Info(p.Sprintf("datelist: produced %d dates", n), "took", took.String())
}

func (a *app) label(ctx context.Context, values any, args []string) error {
	fv := values.(*labelFlags)
	var opts []datelist.Option
	if len(fv.Label) > 0 {
		opts = append(opts, datelist.WithLabel(fv.Label))
	}
	_, c, err := a.setup(ctx, &fv.CommonFlags, args, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, datelist.Describe(c))
	return nil
}

func (a *app) number(ctx context.Context, values any, args []string) error {
	fv := values.(*numberFlags)
	_, c, err := a.setup(ctx, &fv.CommonFlags, args)
	if err != nil {
		return err
	}
	n, err := datelist.Add(c, fv.Operand)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, n)
	return nil
}
