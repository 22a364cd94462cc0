// Command phrasecli loads a dictionary once and phrases messages typed into
// a terminal UI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_phraser/internal/anagrammer"
	"github.com/domino14/word_phraser/internal/phraser"
	"github.com/domino14/word_phraser/internal/tui"
)

// Use more specific env var names here to avoid colliding with other
// env vars user might have on their system.
var LogLevel = os.Getenv("PHRASECLI_LOG_LEVEL")

type Config struct {
	dictionary      string
	dictionaryDB    string
	maxWordLength   int
	maxCombinations uint64
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("phrasecli", flag.ContinueOnError)

	fs.StringVar(&c.dictionary, "dictionary", "", "dictionary file of word,weight lines")
	fs.StringVar(&c.dictionaryDB, "dictionary-db", "", "lexicon database made by dbmaker")
	fs.IntVar(&c.maxWordLength, "max-word-length", anagrammer.DefaultMaxWordLength, "longest message word to anagram; 0 for no limit")
	// Keep the UI responsive by default.
	fs.Uint64Var(&c.maxCombinations, "max-combinations", 10000, "refuse messages with more combinations than this; 0 for no limit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.dictionary == "" && c.dictionaryDB == "" {
		return errors.New("one of -dictionary or -dictionary-db is required")
	}
	return nil
}

func main() {
	// Logs would draw over the UI, so keep them quiet unless asked.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if strings.ToLower(LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-arguments")
	}
	dict, err := phraser.LoadDictionary(cfg.dictionary, cfg.dictionaryDB)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-load-dictionary")
	}

	p := tea.NewProgram(tui.New(dict, dict.Len(), phraser.Options{
		MaxWordLength:   cfg.maxWordLength,
		MaxCombinations: cfg.maxCombinations,
	}), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
