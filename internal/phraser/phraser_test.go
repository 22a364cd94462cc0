package phraser

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/word_phraser/config"
	"github.com/domino14/word_phraser/internal/anagrammer"
	"github.com/domino14/word_phraser/internal/dictionary"
)

func testConfig(message string) *config.Config {
	return &config.Config{
		MessagePath:    filepath.Join("testdata", message),
		DictionaryPath: filepath.Join("testdata", "dict.txt"),
		MaxWordLength:  anagrammer.DefaultMaxWordLength,
	}
}

func TestRunSingleWord(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := Run(testConfig("cat.txt"), &buf)
	is.NoErr(err)
	is.Equal(buf.String(), "cat | weight = 5\ntac | weight = 3\nact | weight = 2\n")
}

func TestRunTwoWords(t *testing.T) {
	var buf bytes.Buffer
	err := Run(testConfig("catdog.txt"), &buf)
	assert.Nil(t, err)
	// odg has weight 0, so picking it leaves a one-word phrase.
	assert.Equal(t, []string{
		"cat god | weight = 12",
		"god cat | weight = 12",
		"god tac | weight = 10",
		"tac god | weight = 10",
		"act god | weight = 9",
		"cat dog | weight = 9",
		"dog cat | weight = 9",
		"god act | weight = 9",
		"dog tac | weight = 7",
		"tac dog | weight = 7",
		"act dog | weight = 6",
		"dog act | weight = 6",
		"cat | weight = 5",
		"tac | weight = 3",
		"act | weight = 2",
	}, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestRunNoAnagram(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	err := Run(testConfig("zebra.txt"), &buf)
	var nae *anagrammer.NoAnagramError
	is.True(errors.As(err, &nae))
	is.Equal(nae.Word, "zebra")
	is.Equal(buf.Len(), 0)
}

func TestRunMissingFiles(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	cfg := testConfig("nothere.txt")
	err := Run(cfg, &buf)
	is.True(errors.Is(err, dictionary.ErrFileNotOpened))

	cfg = testConfig("cat.txt")
	cfg.DictionaryPath = filepath.Join("testdata", "nodict.txt")
	err = Run(cfg, &buf)
	is.True(errors.Is(err, dictionary.ErrFileNotOpened))
	is.Equal(buf.Len(), 0)
}

func TestRunDictionaryDB(t *testing.T) {
	is := is.New(t)
	idx, err := dictionary.LoadFile(filepath.Join("testdata", "dict.txt"))
	is.NoErr(err)
	dbPath := filepath.Join(t.TempDir(), "dict.db")
	is.NoErr(dictionary.CreateDatabase(idx, dbPath, false))

	cfg := testConfig("cat.txt")
	cfg.DictionaryPath = ""
	cfg.DictionaryDBPath = dbPath
	var buf bytes.Buffer
	is.NoErr(Run(cfg, &buf))
	is.Equal(buf.String(), "cat | weight = 5\ntac | weight = 3\nact | weight = 2\n")
}

func TestPhraseCounts(t *testing.T) {
	is := is.New(t)
	idx, err := dictionary.Load(strings.NewReader("ab,1\nba,2\ncd,3\ndc,4\nef,5\n"))
	is.NoErr(err)
	results, err := Phrase(idx, []string{"ab", "cd", "ef"}, Options{})
	is.NoErr(err)
	// 2 * 2 * 1 combinations, each with 3! orderings.
	is.Equal(len(results), 24)
}

func TestPhraseEmptyMessage(t *testing.T) {
	is := is.New(t)
	results, err := Phrase(dictionary.NewIndex(), nil, Options{})
	is.NoErr(err)
	is.Equal(len(results), 1)
	is.Equal(results[0].Text, "")
}

func TestPhraseZeroWeightNeverRendered(t *testing.T) {
	is := is.New(t)
	idx, err := dictionary.Load(strings.NewReader("cat,5\nact,0\n"))
	is.NoErr(err)
	results, err := Phrase(idx, []string{"cat"}, Options{})
	is.NoErr(err)
	for _, r := range results {
		is.True(!strings.Contains(r.Text, "act"))
	}
	// The zero-weight pick still forms a combination, rendered as nothing.
	is.Equal(len(results), 2)
}

func TestPhraseTooManyCombinations(t *testing.T) {
	is := is.New(t)
	idx, err := dictionary.Load(strings.NewReader("ab,1\nba,2\n"))
	is.NoErr(err)
	_, err = Phrase(idx, []string{"ab", "ab", "ab"}, Options{MaxCombinations: 7})
	var tmc *TooManyCombinationsError
	is.True(errors.As(err, &tmc))
	is.Equal(tmc.Count, uint64(8))
	is.Equal(err.Error(), "8 combinations is over the limit of 7")

	results, err := Phrase(idx, []string{"ab", "ab", "ab"}, Options{MaxCombinations: 8})
	is.NoErr(err)
	// Picks that repeat a word have fewer distinct orderings.
	is.Equal(len(results), 2*1+6*3)
}

func TestRunLongRepeatedWordWithDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{
		filepath.Join("testdata", "repeated.txt"),
		filepath.Join("testdata", "repeated_dict.txt"),
	}))
	var buf bytes.Buffer
	is.NoErr(Run(cfg, &buf))
	is.Equal(buf.String(), "aaaaaaaaaaaaa | weight = 1\n")
}

func TestTooManyCombinationsErrorLargeCounts(t *testing.T) {
	err := &TooManyCombinationsError{Count: math.MaxUint64, Max: 1 << 63}
	assert.Equal(t, "18,446,744,073,709,551,615 combinations is over the limit of 9,223,372,036,854,775,808", err.Error())

	err = &TooManyCombinationsError{Overflow: true, Max: math.MaxUint64}
	assert.Equal(t, "combination count overflows, limit is 18,446,744,073,709,551,615", err.Error())
}
