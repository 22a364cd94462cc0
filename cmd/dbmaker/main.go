// Command dbmaker compiles a `word,weight` dictionary file into a SQLite
// lexicon database that phraser and phrasecli can load with -dictionary-db.
package main

import (
	"errors"
	"os"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_phraser/internal/dictionary"
)

type Config struct {
	dictionary  string
	output      string
	forceCreate bool
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("dbmaker", flag.ContinueOnError)

	fs.StringVar(&c.dictionary, "dictionary", "", "The dictionary file to compile")
	fs.StringVar(&c.output, "output", "", "The lexicon database to write")
	fs.BoolVar(&c.forceCreate, "force", false, "Create DB even if it already exists (overwrite)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.dictionary == "" || c.output == "" {
		return errors.New("both -dictionary and -output are required")
	}
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-arguments")
	}
	log.Info().Str("dictionary", cfg.dictionary).Str("output", cfg.output).
		Bool("force", cfg.forceCreate).Msg("dbmaker-started")

	idx, err := dictionary.LoadFile(cfg.dictionary)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-load-dictionary")
	}
	if err := dictionary.CreateDatabase(idx, cfg.output, cfg.forceCreate); err != nil {
		log.Fatal().Err(err).Msg("could-not-create-database")
	}
}
