package geocode

import (
	"sort"
	"strings"
)

// populationRatioLimit is the cutoff below which two candidates count as
// near-equally plausible.
const populationRatioLimit = 1.10

// maxRunnersUp caps how many alternatives ride along with the top candidate
// when a query is ambiguous.
const maxRunnersUp = 4

type scoredCandidate struct {
	result       searchResult
	exactName    bool
	countryMatch bool
	population   int64
	apiOrder     int
}

// rankCandidates orders provider results by plausibility: exact normalized
// name match first, then country-bias match, then population, with the
// provider's own order as the final tiebreak.
func rankCandidates(results []searchResult, city, countryCode string) []scoredCandidate {
	normalizedCity := normalizeQuery(city)

	scored := make([]scoredCandidate, len(results))
	for i, entry := range results {
		scored[i] = scoredCandidate{
			result:       entry,
			exactName:    normalizeQuery(entry.Name) == normalizedCity,
			countryMatch: countryCode != "" && strings.EqualFold(entry.CountryCode, countryCode),
			population:   entry.Population,
			apiOrder:     i,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.exactName != b.exactName {
			return a.exactName
		}
		if a.countryMatch != b.countryMatch {
			return a.countryMatch
		}
		if a.population != b.population {
			return a.population > b.population
		}
		return a.apiOrder < b.apiOrder
	})
	return scored
}

// isAmbiguous reports whether two ranked candidates are too close to pick
// one silently. Unknown populations count as 1 so a missing figure does not
// blow up the ratio.
func isAmbiguous(top, second scoredCandidate) bool {
	if top.exactName != second.exactName {
		return false
	}
	if top.countryMatch != second.countryMatch {
		return false
	}
	p1 := float64(max(top.population, 1))
	p2 := float64(max(second.population, 1))
	ratio := p1 / p2
	if ratio < 1 {
		ratio = p2 / p1
	}
	return ratio <= populationRatioLimit
}

// normalizeQuery lowercases (Unicode-aware), maps dashes and underscores to
// spaces, and collapses runs of whitespace, so "New-York" and "new  york"
// compare equal.
func normalizeQuery(value string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))
	lowered = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, lowered)
	return strings.Join(strings.Fields(lowered), " ")
}
