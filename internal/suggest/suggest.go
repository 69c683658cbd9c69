// Package suggest finds the closest known name to an unresolved one, for
// "did you mean" diagnostics on unresolved @insertpiece names.
package suggest

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Nearest returns the candidate closest to target by fuzzy rank, and
// whether any candidate matched at all.
func Nearest(target string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
