// Package presenter ranks rendered phrases and prints them.
package presenter

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/domino14/word_phraser/internal/render"
)

// Compare orders results by weight, heaviest first, then by text.
func Compare(a, b render.Result) int {
	if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
		return c
	}
	return strings.Compare(a.Text, b.Text)
}

// Sort ranks results in place.
func Sort(results []render.Result) {
	slices.SortFunc(results, Compare)
}

// Line formats one result. Text already ends in a space.
func Line(r render.Result) string {
	return fmt.Sprintf("%s| weight = %d", r.Text, r.Weight)
}

// Present sorts results and writes every one of them to w, one per line.
func Present(w io.Writer, results []render.Result) error {
	Sort(results)
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := bw.WriteString(Line(r) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
