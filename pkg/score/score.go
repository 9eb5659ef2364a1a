// Package score calculates how well a query matches a string.
//
// The score rewards prefix, acronym and sequential character matches and
// lies between 0 (no match) and 1 (perfect match). It is asymmetric: it
// scores how well the query matches inside the source, not a distance.
package score

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	baseBonus          float32 = 0.1
	sameCaseBonus      float32 = 0.1
	consecutiveBonus   float32 = 0.6
	acronymBonus       float32 = 0.8
	startOfStringBonus float32 = 0.15
)

// Scorer holds the optional parameters of a scoring call. The zero value
// scores without fuzziness using the Default option.
type Scorer struct {
	// Fuzziness is the tolerance for query characters missing in the
	// source, clamped to 0...1. 0 means any missing character yields 0.
	Fuzziness float32
	// Option selects the normalization policy.
	Option Option
}

// Score is Against with the scorer's parameters.
func (s Scorer) Score(source, query string) float32 {
	return Against(source, query, s.Fuzziness, s.Option)
}

// Score calculates the score of query against source without fuzziness
// using the Default option.
func Score(source, query string) float32 {
	return Against(source, query, 0, Default)
}

// Against calculates a score describing how well query matches source.
// (0 => no match / 1 => perfect match)
func Against(source, query string, fuzziness float32, option Option) float32 {
	source = norm.NFC.String(source)
	query = norm.NFC.String(query)

	if source == query {
		return 1
	}

	if query == "" {
		return 0
	}

	if source == "" {
		return 0
	}

	fuzzyFactor := 1 - clamp(fuzziness)
	fuzzy := fuzzyFactor < 1

	src := graphemes(source)
	folder := cases.Fold()
	folded := make([]string, len(src))

	for k, v := range src {
		folded[k] = folder.String(v)
	}

	qry := graphemes(query)

	var (
		totalCharacterScore float32
		fuzzies             float32 = 1
		startBonus          bool
		// index of the first cluster not consumed by a previous match
		cursor int
	)

	for i, char := range qry {
		characterScore := baseBonus

		p := indexFold(folded[cursor:], folder.String(char))

		if p < 0 {
			if !fuzzy {
				return 0
			}

			fuzzies += fuzzyFactor
			totalCharacterScore += characterScore

			continue
		}

		pos := cursor + p

		if src[pos] == char {
			characterScore += sameCaseBonus
		}

		if p == 0 {
			characterScore += consecutiveBonus

			if i == 0 {
				startBonus = true
			}
		} else if src[pos-1] == " " {
			characterScore += acronymBonus
		}

		cursor = pos + 1
		totalCharacterScore += characterScore
	}

	stringLength := float32(len(src))
	queryLength := float32(len(qry))

	if option == FavorSmallerWords {
		return totalCharacterScore / stringLength
	}

	queryScore := totalCharacterScore / queryLength

	var finalScore float32

	if option == ReducedLongStringPenalty {
		matchedFraction := queryLength / stringLength
		wordScore := queryScore * matchedFraction
		finalScore = (wordScore + queryScore) / 2
	} else {
		finalScore = ((queryScore * queryLength / stringLength) + queryScore) / 2
	}

	finalScore = finalScore / fuzzies

	if startBonus && finalScore+startOfStringBonus < 1 {
		finalScore += startOfStringBonus
	}

	return finalScore
}

func clamp(f float32) float32 {
	return max(min(f, 1), 0)
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	res := make([]string, 0, len(s))
	state := -1

	var cluster string

	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		res = append(res, cluster)
	}

	return res
}

func indexFold(haystack []string, needle string) int {
	for k, v := range haystack {
		if v == needle {
			return k
		}
	}

	return -1
}
