// Copyright 2026 The Anaphrase Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the anaphrase phrase-anagram CLI and server.

Anaphrase enumerates every sequence of dictionary words whose combined
letters exactly reconstitute the letters of an input text, within a
configurable word-count window. Letters are compared case and
diacritic insensitively, so "Élan" and "lane" draw from the same pool.

# Usage

Find anagrams of a phrase against a word list:

	anaphrase -dict words.txt -mincard 1 -maxcard 3 "bazzecole andanti"

Force a text to appear at the start of every solution (this also cuts
the search space dramatically, since its letters come off the target
before the search starts):

	anaphrase -dict words.txt -maxcard 4 -incl "zeal" "bazzecole andanti"

Solutions stream to stdout one per line, words space-separated, as
they are found; logs and progress go to stderr. Use -o to stream to a
file instead. The order of lines across worker threads is not
guaranteed, only the set of solutions. Zero solutions is a normal,
successful outcome.

Run as a msgpack IPC server instead, reusing one loaded dictionary
across requests:

	anaphrase -dict words.txt -serve

# Configuration

Defaults for the search window, worker count and server solution cap
live in a TOML file, created on first run:

	[search]
	min_cardinality = 1
	max_cardinality = 3
	min_word_length = 1
	max_word_length = 30
	workers = 0

	[dict]
	path = ""

	[server]
	max_solutions = 100

Flags override config values per run. workers = 0 means one search
goroutine per CPU.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/anaphrase/internal/logger"
	"github.com/bastiangx/anaphrase/internal/utils"
	"github.com/bastiangx/anaphrase/pkg/anagram"
	"github.com/bastiangx/anaphrase/pkg/config"
	"github.com/bastiangx/anaphrase/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "1.1.0"
	AppName = "anaphrase"
	gh      = "https://github.com/bastiangx/anaphrase"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config, dictionary and the search engine
// together; the searching itself lives in pkg/anagram.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run as a msgpack IPC server on stdin/stdout")
	configPath := flag.String("config", "", "Custom config file path")
	dictPath := flag.String("dict", "", "Newline-delimited word list file (required)")
	included := flag.String("incl", "", "Text that must lead every solution")
	minCard := flag.Int("mincard", defaults.Search.MinCardinality, "Minimum number of words per solution")
	maxCard := flag.Int("maxcard", defaults.Search.MaxCardinality, "Maximum number of words per solution")
	minWordLen := flag.Int("minwlen", defaults.Search.MinWordLength, "Minimum dictionary word length")
	maxWordLen := flag.Int("maxwlen", defaults.Search.MaxWordLength, "Maximum dictionary word length")
	workers := flag.Int("t", defaults.Search.Workers, "Number of search threads (0 = one per CPU)")
	outPath := flag.String("o", "", "Write solutions to this file instead of stdout")

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	cfg, activePath, _ := config.LoadConfigWithPriority(*configPath)
	if activePath != "" {
		log.Debugf("Using config file: %s", activePath)
	}
	applyConfigDefaults(cfg, minCard, maxCard, minWordLen, maxWordLen, workers)

	if *dictPath == "" {
		*dictPath = cfg.Dict.Path
	}
	if *dictPath == "" {
		log.Fatal("No word list given; use -dict or set dict.path in the config")
	}

	words, err := anagram.LoadWordList(*dictPath)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}

	if *serveMode {
		srv := server.NewServer(words, cfg, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if flag.NArg() < 1 {
		log.Fatal("No text to anagram; pass it as the positional argument")
	}

	finder, err := anagram.NewFinder(anagram.Options{
		Text:       flag.Arg(0),
		Included:   *included,
		MinCard:    *minCard,
		MaxCard:    *maxCard,
		MinWordLen: *minWordLen,
		MaxWordLen: *maxWordLen,
		Workers:    *workers,
	})
	if err != nil {
		log.Fatalf("Invalid search options: %v", err)
	}

	out := os.Stdout
	if *outPath != "" {
		out, err = os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer out.Close()
	}

	sink := anagram.NewStreamSink(out)
	stats, err := finder.Run(words, sink)
	if closeErr := sink.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	log.Infof("Kept %s of %s dictionary words for target '%s'",
		utils.FormatWithCommas(stats.WordsKept),
		utils.FormatWithCommas(stats.WordsRead),
		finder.Target())
	log.Infof("Found %s anagrams in %v",
		utils.FormatWithCommas(int(sink.Count())),
		stats.Elapsed.Round(time.Millisecond))
}

// applyConfigDefaults swaps flag values still at their builtin
// defaults for the ones in the loaded config, so the precedence is
// flag > config file > builtin.
func applyConfigDefaults(cfg *config.Config, minCard, maxCard, minWordLen, maxWordLen, workers *int) {
	defaults := config.DefaultConfig().Search
	if *minCard == defaults.MinCardinality {
		*minCard = cfg.Search.MinCardinality
	}
	if *maxCard == defaults.MaxCardinality {
		*maxCard = cfg.Search.MaxCardinality
	}
	if *minWordLen == defaults.MinWordLength {
		*minWordLen = cfg.Search.MinWordLength
	}
	if *maxWordLen == defaults.MaxWordLength {
		*maxWordLen = cfg.Search.MaxWordLength
	}
	if *workers == defaults.Workers {
		*workers = cfg.Search.Workers
	}
}

func printVersion() {
	vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ Anaphrase ] multi-threaded phrase anagram finder")
	vlog.Print("", "version", Version)
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}
