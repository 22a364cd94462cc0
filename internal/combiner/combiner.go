// Package combiner expands a table of per-word candidates into every
// combination of one candidate per word.
//
// The number of combinations is the product of the candidate list lengths,
// which grows exponentially with the message length. Expand produces them
// one at a time so only the caller decides what to keep.
package combiner

import (
	"iter"
	"math/bits"
	"slices"

	"github.com/domino14/word_phraser/internal/anagrammer"
	"github.com/domino14/word_phraser/internal/dictionary"
)

// Combination is one pick per message word, in message order.
type Combination []dictionary.Entry

// Clone returns a copy that does not share storage with c.
func (c Combination) Clone() Combination {
	return slices.Clone(c)
}

// Count returns how many combinations Expand will produce. The second return
// value is false if the count does not fit in a uint64.
func Count(table anagrammer.Table) (uint64, bool) {
	total := uint64(1)
	for _, cands := range table {
		hi, lo := bits.Mul64(total, uint64(len(cands)))
		if hi != 0 {
			return 0, false
		}
		total = lo
	}
	return total, true
}

// Expand yields the Cartesian product of the table's candidate lists. The
// last position changes fastest. An empty table yields a single empty
// combination; a table holding an empty list yields nothing.
//
// The yielded Combination is reused between iterations. Clone it to keep it.
func Expand(table anagrammer.Table) iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		for _, cands := range table {
			if len(cands) == 0 {
				return
			}
		}
		indexes := make([]int, len(table))
		combo := make(Combination, len(table))
		for i := range table {
			combo[i] = table[i][0]
		}
		for {
			if !yield(combo) {
				return
			}
			pos := len(table) - 1
			for ; pos >= 0; pos-- {
				indexes[pos]++
				if indexes[pos] < len(table[pos]) {
					combo[pos] = table[pos][indexes[pos]]
					break
				}
				indexes[pos] = 0
				combo[pos] = table[pos][0]
			}
			if pos < 0 {
				return
			}
		}
	}
}

// ExpandAll materializes every combination. Only use it on small tables.
func ExpandAll(table anagrammer.Table) []Combination {
	combos := []Combination{}
	for c := range Expand(table) {
		combos = append(combos, c.Clone())
	}
	return combos
}
