package recipe

import (
	"strings"

	"moodbite/domain"
)

// FilterByKeyword keeps recipes whose name or any ingredient line contains
// keyword, ignoring case. An empty keyword keeps everything.
func FilterByKeyword(recipes []domain.Recipe, keyword string) []domain.Recipe {
	kw := strings.ToLower(keyword)
	out := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		if matchesKeyword(&recipes[i], kw) {
			out = append(out, recipes[i])
		}
	}
	return out
}

func matchesKeyword(r *domain.Recipe, kw string) bool {
	if strings.Contains(strings.ToLower(r.Name), kw) {
		return true
	}
	for _, line := range r.IngredientLines() {
		if strings.Contains(strings.ToLower(line), kw) {
			return true
		}
	}
	return false
}

// FilterByMood applies the mood predicate table. Neutral and unknown moods
// keep everything.
func FilterByMood(recipes []domain.Recipe, mood domain.Mood) []domain.Recipe {
	pred := moodPredicate(mood)
	out := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		if pred(&recipes[i]) {
			out = append(out, recipes[i])
		}
	}
	return out
}

// Filter is FilterByKeyword followed by FilterByMood. Input order is kept.
func Filter(recipes []domain.Recipe, keyword string, mood domain.Mood) []domain.Recipe {
	return FilterByMood(FilterByKeyword(recipes, keyword), mood)
}

// Suggest returns up to MaxSuggestions names containing keyword.
func Suggest(recipes []domain.Recipe, keyword string) []string {
	kw := strings.ToLower(keyword)
	out := make([]string, 0, domain.MaxSuggestions)
	for i := range recipes {
		if len(out) == domain.MaxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(recipes[i].Name), kw) {
			out = append(out, recipes[i].Name)
		}
	}
	return out
}

// SearchByName is the list shown after picking a suggestion: name match
// only, no mood narrowing.
func SearchByName(recipes []domain.Recipe, name string) []domain.Recipe {
	n := strings.ToLower(name)
	out := make([]domain.Recipe, 0)
	for i := range recipes {
		if strings.Contains(strings.ToLower(recipes[i].Name), n) {
			out = append(out, recipes[i])
		}
	}
	return out
}

// FilterCollection backs the "my recipes" tabs. Unknown kinds behave as all.
func FilterCollection(recipes []domain.Recipe, favorites, completed []string, kind string) []domain.Recipe {
	fav := toSet(favorites)
	done := toSet(completed)

	var keep func(id string) bool
	switch kind {
	case domain.CollectionFavorite:
		keep = func(id string) bool { return fav[id] }
	case domain.CollectionCompleted:
		keep = func(id string) bool { return done[id] }
	case domain.CollectionBoth:
		keep = func(id string) bool { return fav[id] && done[id] }
	default:
		keep = func(string) bool { return true }
	}

	out := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		if keep(recipes[i].ID) {
			out = append(out, recipes[i])
		}
	}
	return out
}

var excludedAdventureAreas = map[string]bool{
	"American": true,
	"British":  true,
}

func moodPredicate(mood domain.Mood) func(*domain.Recipe) bool {
	switch mood {
	case domain.MoodHappy:
		return func(r *domain.Recipe) bool {
			return containsFold(r.Category, "dessert") || containsFold(r.Tags, "sweet")
		}
	case domain.MoodSad:
		return func(r *domain.Recipe) bool {
			return containsFold(r.Category, "soup") || containsFold(r.Tags, "comfort")
		}
	case domain.MoodTired:
		return func(r *domain.Recipe) bool {
			return containsFold(r.Tags, "easy") || containsFold(r.Tags, "quick")
		}
	case domain.MoodAdventurous:
		return func(r *domain.Recipe) bool {
			return r.Area != "" && !excludedAdventureAreas[r.Area]
		}
	case domain.MoodLazy:
		return func(r *domain.Recipe) bool {
			return containsFold(r.Tags, "lazy") || containsFold(r.Category, "snack")
		}
	default:
		return func(*domain.Recipe) bool { return true }
	}
}

// containsFold reports whether needle (lowercase) occurs in field. An empty
// field never matches.
func containsFold(field, needle string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), needle)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
