package common

import "slices"

// Signature returns the letters of word sorted in descending byte order.
// Two words are anagrams of each other iff their signatures are equal. This
// is the same idea as an alphagram, just sorted the other way around, so that
// stepping with PrevPermutation starts at the first permutation and visits
// every distinct one.
func Signature(word string) string {
	letters := []byte(word)
	slices.Sort(letters)
	slices.Reverse(letters)
	return string(letters)
}

// PrevPermutation rearranges s into the previous lexicographic permutation
// under cmp and reports whether one existed. If s was already the smallest
// permutation it is reset to the largest (descending) one and false is
// returned.
//
// Equal elements are never swapped with each other, so starting from a
// descending sort and looping until false visits every distinct permutation
// exactly once, even with repeated elements.
func PrevPermutation[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	n := len(s)
	if n < 2 {
		return false
	}
	i := n - 1
	for i > 0 && cmp(s[i-1], s[i]) <= 0 {
		i--
	}
	if i == 0 {
		slices.Reverse(s)
		return false
	}
	j := n - 1
	for cmp(s[j], s[i-1]) >= 0 {
		j--
	}
	s[i-1], s[j] = s[j], s[i-1]
	slices.Reverse(s[i:])
	return true
}
