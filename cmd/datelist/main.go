// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datelist displays and iterates over collections of dates.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datelist"
	"cloudeng.io/datelist/locale"
	"cloudeng.io/logging/ctxlog"
)

type CommonFlags struct {
	Config    string        `subcmd:"config,,yaml configuration file"`
	Locale    string        `subcmd:"locale,,BCP 47 locale used to display dates (default pt-BR)"`
	ListType  string        `subcmd:"list-type,,conjunction or disjunction"`
	Delay     time.Duration `subcmd:"delay,0s,delay before each asynchronously produced date (default 100ms)"`
	Location  string        `subcmd:"location,,IANA time zone for the dates (default local)"`
	LogLevel  int           `subcmd:"log-level,0,logging level: 0=error 1=warn 2=info 3=debug"`
	LogFormat string        `subcmd:"log-format,text,log format: text or json"`
}

type formatFlags struct {
	CommonFlags
}

type iterateFlags struct {
	CommonFlags
}

type streamFlags struct {
	CommonFlags
}

type awaitFlags struct {
	CommonFlags
}

type labelFlags struct {
	CommonFlags
	Label string `subcmd:"label,,type label to report (default What?)"`
}

type numberFlags struct {
	CommonFlags
	Operand float64 `subcmd:"add,1,value to add to the collection"`
}

type app struct {
	out    io.Writer
	logOut io.Writer
}

func newCommandSet(out, logOut io.Writer) *subcmd.CommandSet {
	a := &app{out: out, logOut: logOut}

	formatCmd := subcmd.NewCommand("format",
		subcmd.MustRegisterFlagStruct(&formatFlags{}, nil, nil), a.format)
	formatCmd.Document("display the dates as a localized list", "<date>...")

	iterateCmd := subcmd.NewCommand("iterate",
		subcmd.MustRegisterFlagStruct(&iterateFlags{}, nil, nil), a.iterate)
	iterateCmd.Document("print each date in order", "<date>...")

	streamCmd := subcmd.NewCommand("stream",
		subcmd.MustRegisterFlagStruct(&streamFlags{}, nil, nil), a.stream)
	streamCmd.Document("print the ISO8601 form of each date, in order, after a delay per date", "<date>...")

	awaitCmd := subcmd.NewCommand("await",
		subcmd.MustRegisterFlagStruct(&awaitFlags{}, nil, nil), a.await)
	awaitCmd.Document("produce the ISO8601 form of every date concurrently and print them in order", "<date>...")

	labelCmd := subcmd.NewCommand("label",
		subcmd.MustRegisterFlagStruct(&labelFlags{}, nil, nil), a.label)
	labelCmd.Document("print the type description of the collection", "<date>...")

	numberCmd := subcmd.NewCommand("number",
		subcmd.MustRegisterFlagStruct(&numberFlags{}, nil, nil), a.number)
	numberCmd.Document("attempt arithmetic on the collection, which always fails", "<date>...")

	cmdSet := subcmd.NewCommandSet(formatCmd, iterateCmd, streamCmd, awaitCmd, labelCmd, numberCmd)
	cmdSet.Document(`display and iterate over collections of dates.

Dates are specified as arguments in 2006-01-02, 01/02/2006 or Jan-02-2006
format, or via the dates field of a yaml configuration file. Command line
flags override the corresponding configuration file settings.`)
	return cmdSet
}

func main() {
	ctx := context.Background()
	if err := newCommandSet(os.Stdout, os.Stderr).Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

type leveler int

func (l leveler) Level() slog.Level {
	switch {
	case l <= 0:
		return slog.LevelError
	case l == 1:
		return slog.LevelWarn
	case l == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func (a *app) newLogger(cf *CommonFlags) (*slog.Logger, error) {
	if err := flags.OneOf(cf.LogFormat).Validate("text", "json"); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: leveler(cf.LogLevel)}
	if cf.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(a.logOut, opts)), nil
	}
	return slog.New(slog.NewTextHandler(a.logOut, opts)), nil
}

// config returns the configuration obtained by reading the config file,
// if any, and then applying the command line flags and arguments.
func (cf *CommonFlags) config(ctx context.Context, args []string) (datelist.Config, error) {
	var cfg datelist.Config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.Config, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config file %q: %w", cf.Config, err)
		}
	}
	if len(cf.Locale) > 0 {
		cfg.Locale = cf.Locale
	}
	if len(cf.ListType) > 0 {
		if err := flags.OneOf(cf.ListType).Validate("conjunction", "disjunction"); err != nil {
			return cfg, err
		}
		lt, err := locale.ParseListType(cf.ListType)
		if err != nil {
			return cfg, err
		}
		cfg.ListType = lt
	}
	if cf.Delay != 0 {
		cfg.Delay = cf.Delay
	}
	if len(cf.Location) > 0 {
		cfg.Location = cf.Location
	}
	if len(args) > 0 {
		cfg.Dates = cfg.Dates[:0]
		for _, arg := range args {
			cd, err := datelist.ParseCalendarDate(arg)
			if err != nil {
				return cfg, err
			}
			cfg.Dates = append(cfg.Dates, cd)
		}
	}
	return cfg, nil
}

// setup returns a context containing the configured logger and the
// collection specified by the flags and arguments.
func (a *app) setup(ctx context.Context, cf *CommonFlags, args []string, opts ...datelist.Option) (context.Context, *datelist.Collection, error) {
	logger, err := a.newLogger(cf)
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger)
	cfg, err := cf.config(ctx, args)
	if err != nil {
		return ctx, nil, err
	}
	cfgOpts, err := cfg.Options()
	if err != nil {
		return ctx, nil, err
	}
	c, err := datelist.New(cfg.Parts(), append(cfgOpts, opts...)...)
	if err != nil {
		return ctx, nil, err
	}
	ctxlog.Logger(ctx).Info("datelist: collection created", "dates", c.Len(), "locale", c.Locale().String(), "delay", c.Delay())
	return ctx, c, nil
}
