// Command hashlife runs a HashLife cellular-automaton viewer in the
// terminal: h/j/k/l pan, Shift+J/Shift+K zoom, 0 resets the camera, p
// opens the builtin pattern picker, q or Ctrl-C quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/flier/hashlife/internal/term"
	"github.com/flier/hashlife/internal/xflag"
	"github.com/flier/hashlife/pkg/rle"
	"github.com/flier/hashlife/pkg/ruleset"
	"github.com/flier/hashlife/pkg/untrust"
	"github.com/flier/hashlife/pkg/world"
	"github.com/flier/hashlife/pkg/world/library"
	"github.com/flier/hashlife/pkg/xerrors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hashlife:", err)
		os.Exit(1)
	}
}

func run() error {
	rule := xflag.Func("rule", "Life-like rule, e.g. B3/S23 (default Conway's Life)", parseRule)
	logLevel := xflag.Func("log-level", "log level: debug, info, warn, or error (default $HASHLIFE_LOG, or warn)", parseLogLevel)
	pattern := flag.String("pattern", "", "path to an RLE file to load at startup")
	builtin := flag.String("builtin", "", "name of a builtin pattern to load at startup (see -list-builtins)")
	listBuiltins := flag.Bool("list-builtins", false, "print the names of every builtin pattern and exit")
	width := flag.Int("width", 80, "viewport width, in Braille characters")
	height := flag.Int("height", 24, "viewport height, in Braille characters")
	flag.Parse()

	setupLogging(logLevel)

	if *listBuiltins {
		for _, name := range library.Names() {
			fmt.Println(name)
		}
		return nil
	}

	r := ruleset.B3S23
	if xflag.Parsed("rule") {
		r = *rule
	}

	w := world.New(r)

	if err := loadStartupPattern(w, *pattern, *builtin); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return term.NewDriver(w, *width, *height).Run(ctx)
}

func parseRule(s string) (ruleset.Rule, error) {
	r := untrust.NewReader(untrust.Input(s))

	rule, _, err := ruleset.Parse(r)
	if err != nil {
		return ruleset.Rule{}, fmt.Errorf("parsing rule %q: %w", s, err)
	}

	return rule, nil
}

func loadStartupPattern(w *world.World, patternPath, builtinName string) error {
	switch {
	case patternPath != "" && builtinName != "":
		return fmt.Errorf("-pattern and -builtin are mutually exclusive")

	case patternPath != "":
		src, err := os.ReadFile(patternPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", patternPath, err)
		}
		if _, err := w.LoadRLE(src); err != nil {
			return fmt.Errorf("loading %s: %w", patternPath, describeRLEError(err))
		}

	case builtinName != "":
		src, ok := library.Lookup(builtinName)
		if !ok {
			return fmt.Errorf("unknown builtin pattern %q (see -list-builtins)", builtinName)
		}
		if _, err := w.LoadRLE(src); err != nil {
			return fmt.Errorf("loading builtin %q: %w", builtinName, describeRLEError(err))
		}
	}

	return nil
}

// describeRLEError unwraps a malformed comment line into a more specific
// message than rle.ParseError's own, when the underlying cause is one.
func describeRLEError(err error) error {
	if commentErr, ok := xerrors.AsA[*rle.CommentLineError](err); ok {
		return fmt.Errorf("comment line '#%c': %w", commentErr.Type, err)
	}
	return err
}

func parseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return l, nil
}

// setupLogging points the default slog logger at stderr. The level comes
// from -log-level if given, else from $HASHLIFE_LOG, else warn; this is
// informational only, nothing in the simulation branches on log level.
func setupLogging(flagLevel *slog.Level) {
	level := slog.LevelWarn

	switch {
	case xflag.Parsed("log-level"):
		level = *flagLevel
	case os.Getenv("HASHLIFE_LOG") != "":
		if l, err := parseLogLevel(os.Getenv("HASHLIFE_LOG")); err == nil {
			level = l
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
