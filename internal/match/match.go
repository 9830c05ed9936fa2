// Package match scores query names against the person directory and picks
// the best candidate above a similarity threshold.
package match

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"docket/internal/directory"
	"docket/internal/namekey"
)

// DefaultThreshold is the minimum Jaro-Winkler similarity for a confident
// match. 0.85 tolerates typos and middle-name drift on the curated mapping
// data without pulling in unrelated people.
const DefaultThreshold = 0.85

// Result is the outcome of matching a query against the directory: either a
// person at or above the threshold, or Unmatched with the best score seen.
type Result struct {
	Matched   bool
	Person    directory.Person
	Score     float64
	Query     string
	BestScore float64
}

// Match normalizes query and scores it against every directory entry.
//
// Exact canonical-key equality short-circuits with score 1. Otherwise the
// score is the Jaro-Winkler similarity of the canonical keys, taken at the
// better of as-is and token-sorted order so first/last swaps do not depress
// the score. Ties resolve by lower Levenshtein distance on the raw strings,
// then by first-seen directory order, so repeated runs place files
// identically.
func Match(query string, dir *directory.Directory, threshold float64) Result {
	result := Result{Query: query}
	if dir == nil || dir.Len() == 0 {
		return result
	}

	queryKey := namekey.Normalize(query)
	if person, ok := dir.Lookup(queryKey); ok {
		return Result{Matched: true, Person: person, Score: 1, Query: query, BestScore: 1}
	}

	querySorted := sortTokens(queryKey)
	var (
		best      directory.Person
		bestScore float64
		bestEdit  int
		found     bool
	)
	for _, person := range dir.Entries() {
		score := similarity(queryKey, querySorted, person.Key)
		if score < bestScore {
			continue
		}
		edit := matchr.Levenshtein(query, person.RawName)
		if found && score == bestScore && edit >= bestEdit {
			continue
		}
		best = person
		bestScore = score
		bestEdit = edit
		found = true
	}

	result.BestScore = bestScore
	if !found || bestScore < threshold {
		return result
	}
	return Result{Matched: true, Person: best, Score: bestScore, Query: query, BestScore: bestScore}
}

func similarity(queryKey namekey.Key, querySorted string, candidate namekey.Key) float64 {
	direct := matchr.JaroWinkler(queryKey.String(), candidate.String(), false)
	reordered := matchr.JaroWinkler(querySorted, sortTokens(candidate), false)
	if reordered > direct {
		return reordered
	}
	return direct
}

func sortTokens(key namekey.Key) string {
	parts := key.Parts()
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
