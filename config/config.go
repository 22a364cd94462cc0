package config

import (
	"errors"
	"fmt"

	"github.com/namsral/flag"
)

// ErrArgumentCount is returned when the wrong number of positional
// arguments is given.
var ErrArgumentCount = errors.New("wrong number of arguments")

type Config struct {
	MessagePath      string
	DictionaryPath   string
	DictionaryDBPath string

	MaxWordLength   int
	MaxCombinations uint64

	LogLevel string
}

// Load loads the configs from the given arguments. Positional arguments are
// MESSAGE_FILE DICTIONARY_FILE, or just MESSAGE_FILE when a lexicon
// database is given with -dictionary-db. Every flag can also be set from
// the environment, e.g. LOG_LEVEL.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("phraser", flag.ContinueOnError)

	fs.StringVar(&c.DictionaryDBPath, "dictionary-db", "", "lexicon database made by dbmaker, used instead of a dictionary file")
	fs.IntVar(&c.MaxWordLength, "max-word-length", 0, "longest message word to anagram; 0 for no limit")
	fs.Uint64Var(&c.MaxCombinations, "max-combinations", 0, "refuse messages with more combinations than this; 0 for no limit")

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if c.DictionaryDBPath != "" {
		if len(rest) != 1 {
			return fmt.Errorf("%w: expected MESSAGE_FILE, got %d", ErrArgumentCount, len(rest))
		}
		c.MessagePath = rest[0]
		return nil
	}
	if len(rest) != 2 {
		return fmt.Errorf("%w: expected MESSAGE_FILE DICTIONARY_FILE, got %d", ErrArgumentCount, len(rest))
	}
	c.MessagePath, c.DictionaryPath = rest[0], rest[1]
	return nil
}
