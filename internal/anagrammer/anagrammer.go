// Package anagrammer finds, for each word of a message, every dictionary
// word made of exactly the same letters.
//
// Anagrams are found by stepping through the distinct permutations of the
// word's signature and looking each one up, so the work is factorial in the
// word's length. Words longer than a dozen letters or so are not practical.
package anagrammer

import (
	"cmp"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/word_phraser/internal/common"
	"github.com/domino14/word_phraser/internal/dictionary"
)

// DefaultMaxWordLength bounds the factorial permutation walk for
// interactive use. Batch runs default to no limit.
const DefaultMaxWordLength = 12

// Lexicon is what the resolver needs from a dictionary.
type Lexicon interface {
	Weight(word string) (int, bool)
}

// CandidateList holds the anagrams of one word.
type CandidateList []dictionary.Entry

// Table has one CandidateList per message word, in message order.
type Table []CandidateList

// Lens returns the length of every list in the table.
func (t Table) Lens() []int {
	lens := make([]int, len(t))
	for i := range t {
		lens[i] = len(t[i])
	}
	return lens
}

// NoAnagramError means a message word has no anagram in the dictionary.
type NoAnagramError struct {
	Word string
}

func (e *NoAnagramError) Error() string {
	return "could not find anagrams for word: " + e.Word
}

// WordTooLongError means a message word is past the resolver's length limit.
type WordTooLongError struct {
	Word string
	Max  int
}

func (e *WordTooLongError) Error() string {
	return fmt.Sprintf("word %q is longer than %d letters", e.Word, e.Max)
}

// Resolver looks up anagrams and remembers the result per signature, so
// repeated words, or words that are anagrams of each other, cost one walk.
// A Resolver is not safe for concurrent use.
type Resolver struct {
	lex           Lexicon
	maxWordLength int
	cache         map[string]CandidateList
}

// NewResolver creates a resolver over lex. A maxWordLength of 0 or less
// means no limit.
func NewResolver(lex Lexicon, maxWordLength int) *Resolver {
	return &Resolver{
		lex:           lex,
		maxWordLength: maxWordLength,
		cache:         map[string]CandidateList{},
	}
}

// Resolve returns every dictionary entry that is a permutation of word, in
// descending lexicographic order of the matched words. The returned list is
// shared with the resolver's cache and must not be modified. An empty list
// means nothing matched.
func (r *Resolver) Resolve(word string) CandidateList {
	sig := common.Signature(word)
	if cands, ok := r.cache[sig]; ok {
		return cands
	}
	cands := CandidateList{}
	letters := []byte(sig)
	tried := 0
	for {
		tried++
		candidate := string(letters)
		if w, ok := r.lex.Weight(candidate); ok {
			cands = append(cands, dictionary.Entry{Word: candidate, Weight: w})
		}
		if !common.PrevPermutation(letters, cmp.Compare[byte]) {
			break
		}
	}
	log.Debug().Str("word", word).Int("permutations", tried).
		Int("anagrams", len(cands)).Msg("resolved")
	r.cache[sig] = cands
	return cands
}

// BuildTable resolves every word of a message. It fails on the first word
// that is too long or that has no anagrams; no partial table is returned.
func BuildTable(words []string, r *Resolver) (Table, error) {
	table := make(Table, 0, len(words))
	for _, word := range words {
		if r.maxWordLength > 0 && len(word) > r.maxWordLength {
			return nil, &WordTooLongError{Word: word, Max: r.maxWordLength}
		}
		cands := r.Resolve(word)
		if len(cands) == 0 {
			return nil, &NoAnagramError{Word: word}
		}
		table = append(table, cands)
	}
	return table, nil
}
