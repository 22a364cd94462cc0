// Command phraser replaces every word of a message with each of its
// anagrams from a weighted dictionary and prints every resulting phrase,
// heaviest first.
//
//	phraser [flags] MESSAGE_FILE DICTIONARY_FILE
//	phraser [flags] -dictionary-db LEXICON_DB MESSAGE_FILE
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_phraser/config"
	"github.com/domino14/word_phraser/internal/phraser"
)

const usage = `usage: phraser [flags] MESSAGE_FILE DICTIONARY_FILE
       phraser [flags] -dictionary-db LEXICON_DB MESSAGE_FILE`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, config.ErrArgumentCount) {
			fmt.Fprintln(os.Stderr, usage)
		}
		log.Error().Err(err).Msg("bad-arguments")
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.Fatal().Err(err).Str("log-level", cfg.LogLevel).Msg("bad-log-level")
	}
	zerolog.SetGlobalLevel(level)
	log.Debug().Interface("config", cfg).Msg("phraser-started")

	if err := phraser.Run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("phrasing-failed")
	}
}
