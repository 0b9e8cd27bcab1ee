package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"tst"
	"tst/internal/config"
	"tst/internal/vocab"
)

const usage = `tstsuggest - prefix suggestions over a vocabulary file

Usage:
  tstsuggest [flags] [prefix...]

With no prefix arguments, prefixes are read from stdin, one per line.

Flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "tstsuggest:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("tstsuggest", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	configPath := flags.String("config", "", "Path to config file")
	vocabPath := flags.String("vocab", "", "Path to vocabulary file, overrides config")
	limit := flags.Int("limit", -1, "Maximum suggestions per prefix, 0 for unlimited, overrides config")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *vocabPath != "" {
		cfg.Vocabulary.Path = *vocabPath
	}
	if *limit >= 0 {
		cfg.Suggest.Limit = *limit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	tree := tst.New[string]()
	start := time.Now()
	n, err := vocab.LoadFile(cfg.Vocabulary.Path, cfg.Vocabulary.Separator, tree, logger)
	if err != nil {
		return err
	}
	logger.Info().
		Str("path", cfg.Vocabulary.Path).
		Int("entries", n).
		Int("keys", tree.Len()).
		Dur("took", time.Since(start)).
		Msg("Vocabulary loaded")

	out := bufio.NewWriter(stdout)

	prefixes := flags.Args()
	if len(prefixes) > 0 {
		for _, prefix := range prefixes {
			if len(prefixes) > 1 {
				fmt.Fprintf(out, "%s:\n", prefix)
			}
			writeSuggestions(out, tree, prefix, cfg.Suggest.Limit)
		}
		return errors.Wrap(out.Flush(), "write suggestions")
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		writeSuggestions(out, tree, scanner.Text(), cfg.Suggest.Limit)
		if err := out.Flush(); err != nil {
			return errors.Wrap(err, "write suggestions")
		}
	}
	return errors.Wrap(scanner.Err(), "read prefixes")
}

func writeSuggestions(w io.Writer, tree tst.Tree[string], prefix string, limit int) {
	suggestions := tree.Suggest(prefix)
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	for _, s := range suggestions {
		fmt.Fprintln(w, s)
	}
}

func newLogger(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := cfg.ParseLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
