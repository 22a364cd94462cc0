// Package render turns a combination of candidate words into printable
// phrases, one for every distinct ordering of its words.
package render

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/domino14/word_phraser/internal/combiner"
	"github.com/domino14/word_phraser/internal/common"
	"github.com/domino14/word_phraser/internal/dictionary"
)

// Result is one rendered phrase. Text holds every word followed by a single
// space, trailing space included.
type Result struct {
	Text   string
	Weight int
}

// Dictionary entries that stand for silence rather than a word.
const (
	NewlineMarker = "\n"
	SpaceMarker   = " "
)

// IsPlaceholder reports whether e is a null entry that never gets rendered.
func IsPlaceholder(e dictionary.Entry) bool {
	return e.Word == NewlineMarker || e.Word == SpaceMarker || e.Weight == 0
}

// Filter returns a new slice holding the entries of c that are not
// placeholders.
func Filter(c combiner.Combination) []dictionary.Entry {
	kept := make([]dictionary.Entry, 0, len(c))
	for _, e := range c {
		if !IsPlaceholder(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

func compareEntries(a, b dictionary.Entry) int {
	if c := strings.Compare(a.Word, b.Word); c != 0 {
		return c
	}
	return cmp.Compare(a.Weight, b.Weight)
}

// Orderings yields one Result per distinct ordering of the surviving
// entries of c, starting from descending word order. m surviving entries
// give m! results, fewer when a word repeats. If nothing survives, a single
// empty result is yielded. c itself is not modified.
func Orderings(c combiner.Combination) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		entries := Filter(c)
		slices.SortFunc(entries, func(a, b dictionary.Entry) int {
			return compareEntries(b, a)
		})
		for {
			if !yield(renderOrdering(entries)) {
				return
			}
			if !common.PrevPermutation(entries, compareEntries) {
				return
			}
		}
	}
}

// Render collects every ordering of c.
func Render(c combiner.Combination) []Result {
	return slices.Collect(Orderings(c))
}

func renderOrdering(entries []dictionary.Entry) Result {
	var sb strings.Builder
	weight := 0
	for _, e := range entries {
		sb.WriteString(e.Word)
		sb.WriteByte(' ')
		weight += e.Weight
	}
	return Result{Text: sb.String(), Weight: weight}
}
