package pick

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher reports whether an option description matches a search query.
// Matchers are pure predicates: they never reorder candidates, so the
// visible set is always a subsequence of the candidate set regardless of
// which matcher a Controller is configured with.
type Matcher func(description, query string) bool

// MatchSubstring is the default matcher: case-insensitive substring
// containment. An empty query matches everything.
func MatchSubstring(description, query string) bool {
	return strings.Contains(strings.ToLower(description), strings.ToLower(query))
}

// MatchFuzzy matches when the query's characters appear in order within the
// description, case-insensitively and Unicode-normalized ("jsm" matches
// "John Smith"). An empty query matches everything.
func MatchFuzzy(description, query string) bool {
	return fuzzy.MatchNormalizedFold(query, description)
}
