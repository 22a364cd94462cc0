package anagrammer

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/word_phraser/internal/common"
	"github.com/domino14/word_phraser/internal/dictionary"
)

func mustLoad(t *testing.T, contents string) *dictionary.Index {
	t.Helper()
	idx, err := dictionary.Load(strings.NewReader(contents))
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

const testDict = `cat,5
tac,3
act,2
dog,4
god,7
listen,10
silent,8
enlist,6
tinsel,1
inlets,0
aab,1
aba,2
baa,3
Cat,9
`

type resolvetestpair struct {
	word    string
	answers []string
}

var resolveTests = []resolvetestpair{
	{"cat", []string{"tac", "cat", "act"}},
	{"act", []string{"tac", "cat", "act"}},
	{"odg", []string{"god", "dog"}},
	{"tinsel", []string{"tinsel", "silent", "listen", "inlets", "enlist"}},
	{"aab", []string{"baa", "aba", "aab"}},
	{"Tac", []string{}},
	{"taC", []string{"Cat"}},
	{"zzz", []string{}},
}

func words(cands CandidateList) []string {
	ws := []string{}
	for _, c := range cands {
		ws = append(ws, c.Word)
	}
	return ws
}

func TestResolve(t *testing.T) {
	r := NewResolver(mustLoad(t, testDict), DefaultMaxWordLength)
	for _, pair := range resolveTests {
		assert.Equal(t, pair.answers, words(r.Resolve(pair.word)), pair.word)
	}
}

func TestResolveWeights(t *testing.T) {
	is := is.New(t)
	r := NewResolver(mustLoad(t, testDict), DefaultMaxWordLength)
	is.Equal(r.Resolve("cat"), CandidateList{
		{Word: "tac", Weight: 3},
		{Word: "cat", Weight: 5},
		{Word: "act", Weight: 2},
	})
}

// Every dictionary word with the same letters shows up exactly once.
func TestResolveComplete(t *testing.T) {
	is := is.New(t)
	idx := mustLoad(t, testDict)
	r := NewResolver(idx, DefaultMaxWordLength)
	for _, word := range []string{"cat", "dog", "silent", "aab", "Cat"} {
		expected := map[string]int{}
		for _, e := range idx.Entries() {
			if common.Signature(e.Word) == common.Signature(word) {
				expected[e.Word] = e.Weight
			}
		}
		got := map[string]int{}
		for _, c := range r.Resolve(word) {
			_, dup := got[c.Word]
			is.True(!dup)
			got[c.Word] = c.Weight
		}
		is.Equal(got, expected)
	}
}

func TestResolveMemoizes(t *testing.T) {
	is := is.New(t)
	r := NewResolver(mustLoad(t, testDict), DefaultMaxWordLength)
	first := r.Resolve("cat")
	second := r.Resolve("tca")
	is.Equal(len(r.cache), 1)
	is.Equal(&first[0], &second[0])
}

func TestBuildTable(t *testing.T) {
	is := is.New(t)
	r := NewResolver(mustLoad(t, testDict), DefaultMaxWordLength)
	table, err := BuildTable([]string{"dog", "cat", "aab"}, r)
	is.NoErr(err)
	is.Equal(len(table), 3)
	is.Equal(table.Lens(), []int{2, 3, 3})
	is.Equal(words(table[0]), []string{"god", "dog"})
}

func TestBuildTableEmptyMessage(t *testing.T) {
	is := is.New(t)
	r := NewResolver(mustLoad(t, testDict), DefaultMaxWordLength)
	table, err := BuildTable(nil, r)
	is.NoErr(err)
	is.Equal(len(table), 0)
}

func TestBuildTableNoAnagram(t *testing.T) {
	is := is.New(t)
	r := NewResolver(mustLoad(t, testDict), DefaultMaxWordLength)
	table, err := BuildTable([]string{"cat", "xyz", "dog"}, r)
	is.Equal(table, nil)
	var nae *NoAnagramError
	is.True(errors.As(err, &nae))
	is.Equal(nae.Word, "xyz")
	is.Equal(err.Error(), "could not find anagrams for word: xyz")
}

func TestBuildTableWordTooLong(t *testing.T) {
	is := is.New(t)
	r := NewResolver(mustLoad(t, testDict), 5)
	_, err := BuildTable([]string{"cat", "silent"}, r)
	var wtl *WordTooLongError
	is.True(errors.As(err, &wtl))
	is.Equal(wtl.Word, "silent")

	r = NewResolver(mustLoad(t, testDict), 0)
	_, err = BuildTable([]string{"cat", "silent"}, r)
	is.NoErr(err)
}

func TestResolveLongRepeatedWord(t *testing.T) {
	is := is.New(t)
	r := NewResolver(mustLoad(t, "aaaaaaaaaaaaab,4\nbaaaaaaaaaaaaa,6\n"), 0)
	table, err := BuildTable([]string{"aaaaaaabaaaaaa"}, r)
	is.NoErr(err)
	// 14 letters, but only 14 distinct permutations to walk.
	is.Equal(words(table[0]), []string{"baaaaaaaaaaaaa", "aaaaaaaaaaaaab"})
}
