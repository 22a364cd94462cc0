// Package phraser runs the whole anagram-phrasing pipeline: resolve every
// message word, expand every combination, render every ordering, rank.
package phraser

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/domino14/word_phraser/config"
	"github.com/domino14/word_phraser/internal/anagrammer"
	"github.com/domino14/word_phraser/internal/combiner"
	"github.com/domino14/word_phraser/internal/dictionary"
	"github.com/domino14/word_phraser/internal/message"
	"github.com/domino14/word_phraser/internal/presenter"
	"github.com/domino14/word_phraser/internal/render"
)

// Options bounds the work Phrase is willing to do.
type Options struct {
	// MaxWordLength is passed on to the anagram resolver. 0 means no limit.
	MaxWordLength int
	// MaxCombinations refuses tables that expand to more combinations than
	// this. 0 means no limit.
	MaxCombinations uint64
}

// TooManyCombinationsError is returned before expanding a table that is
// over Options.MaxCombinations.
type TooManyCombinationsError struct {
	Count    uint64
	Overflow bool
	Max      uint64
}

func (e *TooManyCombinationsError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("combination count overflows, limit is %s", formatCount(e.Max))
	}
	return fmt.Sprintf("%s combinations is over the limit of %s",
		formatCount(e.Count), formatCount(e.Max))
}

// formatCount groups the digits of n, which may be above math.MaxInt64.
func formatCount(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Debug().Msgf("%s took %s", name, elapsed)
}

// Phrase returns every rendered ordering of every combination of anagrams
// of words, unsorted. Nothing is returned if any word fails to resolve.
func Phrase(lex anagrammer.Lexicon, words []string, opts Options) ([]render.Result, error) {
	defer timeTrack(time.Now(), "phrase")

	table, err := anagrammer.BuildTable(words, anagrammer.NewResolver(lex, opts.MaxWordLength))
	if err != nil {
		return nil, err
	}
	count, ok := combiner.Count(table)
	if opts.MaxCombinations > 0 && (!ok || count > opts.MaxCombinations) {
		return nil, &TooManyCombinationsError{Count: count, Overflow: !ok, Max: opts.MaxCombinations}
	}
	combinations := "overflow"
	if ok {
		combinations = formatCount(count)
	}
	log.Debug().Ints("candidates", table.Lens()).
		Str("combinations", combinations).Msg("table-built")

	results := []render.Result{}
	for c := range combiner.Expand(table) {
		for r := range render.Orderings(c) {
			results = append(results, r)
		}
	}
	log.Debug().Str("results", humanize.Comma(int64(len(results)))).Msg("rendered")
	return results, nil
}

// LoadDictionary loads the lexicon database if dbPath is set, and the text
// dictionary at path otherwise.
func LoadDictionary(path, dbPath string) (*dictionary.Index, error) {
	if dbPath != "" {
		return dictionary.LoadDB(dbPath)
	}
	return dictionary.LoadFile(path)
}

// Run performs one batch run and writes the ranked phrases to w. Output is
// only written once every stage has succeeded.
func Run(cfg *config.Config, w io.Writer) error {
	dict, err := LoadDictionary(cfg.DictionaryPath, cfg.DictionaryDBPath)
	if err != nil {
		return err
	}
	words, err := message.LoadFile(cfg.MessagePath)
	if err != nil {
		return err
	}
	log.Info().Int("dictionary-words", dict.Len()).Int("message-words", len(words)).Msg("inputs-loaded")

	results, err := Phrase(dict, words, Options{
		MaxWordLength:   cfg.MaxWordLength,
		MaxCombinations: cfg.MaxCombinations,
	})
	if err != nil {
		return err
	}
	return presenter.Present(w, results)
}
