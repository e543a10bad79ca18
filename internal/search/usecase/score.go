package usecase

import (
	"regexp"
	"strings"
)

const floorScore = 20

// tier is one step of the relevance policy. Tiers are evaluated in order and the first match wins.
type tier struct {
	name  string
	score int
	match func(s *scorer, candidate string) bool
}

var tiers = []tier{
	{name: "exact", score: 100, match: func(s *scorer, c string) bool { return strings.EqualFold(c, s.pattern) }},
	{name: "prefix", score: 80, match: func(s *scorer, c string) bool { return strings.HasPrefix(c, s.pattern) }},
	{name: "word", score: 60, match: func(s *scorer, c string) bool { return s.word != nil && s.word.MatchString(c) }},
	{name: "substring", score: 40, match: func(s *scorer, c string) bool { return strings.Contains(strings.ToLower(c), s.pattern) }},
}

// scorer scores candidates against one normalized query. The word-boundary
// regexp is compiled once per search rather than once per candidate.
type scorer struct {
	pattern string
	word    *regexp.Regexp
}

func newScorer(pattern string) *scorer {
	s := &scorer{pattern: pattern}
	if re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(pattern) + `\b`); err == nil {
		s.word = re
	}
	return s
}

// Score returns the relevance score of candidate, 20 when no tier matches.
// The prefix tier compares against the candidate as stored, so "Tango Teacher"
// does not prefix-match the lower-cased query "tango". The substring tier ignores
// case like the ILIKE that selected the row.
func (s *scorer) Score(candidate string) int {
	for _, t := range tiers {
		if t.match(s, candidate) {
			return t.score
		}
	}
	return floorScore
}
