// Package views holds the pure derived-view computations over collection
// snapshots: aggregate scores, search matching, facet value lists, and the
// recipe filter. Data volumes are tens of entries, so everything is
// recomputed on demand and nothing is cached.
package views

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/brewnote/brewnote/internal/model"
)

// AggregateScore returns the bean's display score: the mean of its tasting
// record scores rounded to 2 decimals, or the legacy score when no records
// exist (0 for fully migrated, unrated beans).
func AggregateScore(b model.Bean) float64 {
	if len(b.TastingRecords) == 0 {
		return b.Score
	}
	var sum float64
	for _, rec := range b.TastingRecords {
		sum += rec.Score
	}
	return math.Round(sum/float64(len(b.TastingRecords))*100) / 100
}

// MatchesSearch reports whether every whitespace-separated term of the query
// appears (case-insensitively) in the bean's combined
// name/roastery/process/country/region/farm text. A blank query matches
// everything.
func MatchesSearch(b model.Bean, query string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		b.Name, b.Roastery, b.Process, b.Country, b.Region, b.Farm,
	}, " "))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// FilterBeans returns the beans matching the query, preserving list order.
func FilterBeans(beans []model.Bean, query string) []model.Bean {
	out := make([]model.Bean, 0, len(beans))
	for _, b := range beans {
		if MatchesSearch(b, query) {
			out = append(out, b)
		}
	}
	return out
}

// --- Recipe facets ---

// DrinkTypeFacets returns the fixed drink-type facet list.
func DrinkTypeFacets() []string {
	out := []string{model.FacetAll}
	for _, t := range model.DrinkTypes {
		out = append(out, string(t))
	}
	return out
}

// DripperFacets returns the distinct drippers across recipes, alphabetical,
// with "All" first and the any-dripper value pinned second when present.
func DripperFacets(recipes []model.Recipe) []string {
	seen := map[string]bool{}
	hasAny := false
	var drippers []string
	for _, r := range recipes {
		if r.Dripper == model.DripperAny {
			hasAny = true
			continue
		}
		if r.Dripper != "" && !seen[r.Dripper] {
			seen[r.Dripper] = true
			drippers = append(drippers, r.Dripper)
		}
	}
	sort.Strings(drippers)

	out := []string{model.FacetAll}
	if hasAny {
		out = append(out, model.DripperAny)
	}
	return append(out, drippers...)
}

// RoastLevelFacets returns the distinct roast levels present across all
// recipes' roast-level sets, in the fixed vocabulary order with unknown
// values appended alphabetically, "All" first.
func RoastLevelFacets(recipes []model.Recipe) []string {
	seen := map[string]bool{}
	var levels []string
	for _, r := range recipes {
		for _, lvl := range r.RoastLevel {
			if lvl != "" && !seen[lvl] {
				seen[lvl] = true
				levels = append(levels, lvl)
			}
		}
	}

	rank := map[string]int{}
	for i, lvl := range model.RoastLevels {
		rank[lvl] = i
	}
	sort.Slice(levels, func(i, j int) bool {
		ri, iKnown := rank[levels[i]]
		rj, jKnown := rank[levels[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return levels[i] < levels[j]
		}
	})
	return append([]string{model.FacetAll}, levels...)
}

// BeanAmountFacets returns the distinct bean masses ascending, "All" first.
func BeanAmountFacets(recipes []model.Recipe) []string {
	seen := map[float64]bool{}
	var amounts []float64
	for _, r := range recipes {
		if !seen[r.BeanAmount] {
			seen[r.BeanAmount] = true
			amounts = append(amounts, r.BeanAmount)
		}
	}
	sort.Float64s(amounts)

	out := []string{model.FacetAll}
	for _, a := range amounts {
		out = append(out, FormatAmount(a))
	}
	return out
}

// FormatAmount renders a bean mass the way facet values carry it, without
// trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// --- Recipe filter ---

// RecipeFilter is the active facet selection. Each field is either a facet
// value or "All" (the zero value "" is treated as "All").
type RecipeFilter struct {
	Type       string
	Dripper    string
	RoastLevel string
	BeanAmount string
}

// Matches reports whether the recipe satisfies all four facets.
func (f RecipeFilter) Matches(r model.Recipe) bool {
	if !facetIsAll(f.Type) && string(r.Type) != f.Type {
		return false
	}
	if !facetIsAll(f.Dripper) && r.Dripper != f.Dripper {
		return false
	}
	if !facetIsAll(f.RoastLevel) {
		found := false
		for _, lvl := range r.RoastLevel {
			if lvl == f.RoastLevel {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !facetIsAll(f.BeanAmount) {
		want, err := strconv.ParseFloat(f.BeanAmount, 64)
		if err != nil || r.BeanAmount != want {
			return false
		}
	}
	return true
}

// FilterRecipes returns the recipes matching the filter, preserving order.
func FilterRecipes(recipes []model.Recipe, f RecipeFilter) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func facetIsAll(v string) bool {
	return v == "" || v == model.FacetAll
}

// SortRecordsByDate returns the bean's tasting records ordered by date
// descending. Display order is computed, never stored.
func SortRecordsByDate(records []model.TastingRecord) []model.TastingRecord {
	out := append([]model.TastingRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
