// Package dictionary holds the weighted word list that messages are
// anagrammed against. It can be loaded from a comma-separated text file or
// from a lexicon database built by dbmaker.
package dictionary

import (
	"errors"
	"fmt"
	"sort"
)

// MaxLineLength is the longest line the dictionary and message readers
// accept.
const MaxLineLength = 16 * 1024 * 1024

// ErrFileNotOpened is wrapped around any failure to open an input file.
var ErrFileNotOpened = errors.New("file not opened")

// Entry is a dictionary word with its weight.
type Entry struct {
	Word   string
	Weight int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s,%d", e.Word, e.Weight)
}

// MalformedWeightError is returned when the weight field of a dictionary
// line is not an integer.
type MalformedWeightError struct {
	Line  int
	Value string
	Err   error
}

func (e *MalformedWeightError) Error() string {
	return fmt.Sprintf("line %d: malformed weight %q", e.Line, e.Value)
}

func (e *MalformedWeightError) Unwrap() error {
	return e.Err
}

// Index maps each dictionary word to its weight. It is built once and is
// read-only afterwards.
type Index struct {
	weights map[string]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{weights: map[string]int{}}
}

// Set stores the weight for word, overwriting any earlier weight.
func (idx *Index) Set(word string, weight int) {
	idx.weights[word] = weight
}

// Weight looks up a word. The comparison is exact and byte-wise.
func (idx *Index) Weight(word string) (int, bool) {
	w, ok := idx.weights[word]
	return w, ok
}

// Len returns the number of distinct words in the index.
func (idx *Index) Len() int {
	return len(idx.weights)
}

// Entries returns all entries sorted by word.
func (idx *Index) Entries() []Entry {
	entries := make([]Entry, 0, len(idx.weights))
	for w, weight := range idx.weights {
		entries = append(entries, Entry{Word: w, Weight: weight})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}
