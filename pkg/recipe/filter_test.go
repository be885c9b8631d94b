package recipe

import (
	"testing"

	"moodbite/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID: "1", Name: "Apple Frangipan Tart", Category: "Dessert", Area: "British", Tags: "Tart,Baking,Sweet",
			Ingredients: []domain.IngredientSlot{
				{Slot: 1, Ingredient: "digestive biscuits", Measure: "175g/6oz"},
				{Slot: 2, Ingredient: "Butter", Measure: "75g"},
			},
		},
		{
			ID: "2", Name: "Leek Soup", Category: "Soup", Area: "French", Tags: "Comfort,Warm",
			Ingredients: []domain.IngredientSlot{
				{Slot: 1, Ingredient: "Leek", Measure: "2"},
				{Slot: 3, Ingredient: "Potatoes", Measure: "400g"},
			},
		},
		{
			ID: "3", Name: "Big Mac", Category: "Beef", Area: "American", Tags: "Quick,Easy",
			Ingredients: []domain.IngredientSlot{
				{Slot: 1, Ingredient: "Minced Beef", Measure: "400g"},
			},
		},
		{
			ID: "4", Name: "Nachos", Category: "Snack", Area: "", Tags: "",
			Ingredients: []domain.IngredientSlot{
				{Slot: 1, Ingredient: "Tortilla Chips", Measure: "1 bag"},
			},
		},
		{
			ID: "5", Name: "Tonkatsu Pork", Category: "Pork", Area: "Japanese", Tags: "Lazy",
		},
	}
}

func ids(recipes []domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterByKeyword(t *testing.T) {
	recipes := sampleRecipes()

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{name: "empty keeps all", keyword: "", want: []string{"1", "2", "3", "4", "5"}},
		{name: "name match case insensitive", keyword: "SOUP", want: []string{"2"}},
		{name: "ingredient match", keyword: "potato", want: []string{"2"}},
		{name: "measure is part of the ingredient line", keyword: "400g", want: []string{"2", "3"}},
		{name: "no match", keyword: "xyz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterByKeyword(recipes, tt.keyword))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterByKeyword(%q) mismatch (-want +got):\n%s", tt.keyword, diff)
			}
		})
	}
}

func TestFilterByMood(t *testing.T) {
	recipes := sampleRecipes()

	tests := []struct {
		mood domain.Mood
		want []string
	}{
		{domain.MoodHappy, []string{"1"}},
		{domain.MoodSad, []string{"2"}},
		{domain.MoodTired, []string{"3"}},
		{domain.MoodAdventurous, []string{"2", "5"}},
		{domain.MoodLazy, []string{"4", "5"}},
		{domain.MoodNeutral, []string{"1", "2", "3", "4", "5"}},
		{domain.Mood("grumpy"), []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			got := ids(FilterByMood(recipes, tt.mood))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterByMood(%s) mismatch (-want +got):\n%s", tt.mood, diff)
			}
		})
	}
}

func TestFilterDessertFrenchScenario(t *testing.T) {
	recipes := []domain.Recipe{{ID: "x", Name: "Tarte Tatin", Category: "Dessert", Area: "French"}}

	assert.Len(t, Filter(recipes, "", domain.MoodHappy), 1)
	assert.Len(t, Filter(recipes, "", domain.MoodAdventurous), 1)
	assert.Empty(t, Filter(recipes, "", domain.MoodSad))
}

func TestFilterMissingFieldsNeverMatch(t *testing.T) {
	recipes := []domain.Recipe{{ID: "bare", Name: "Mystery"}}

	for _, m := range []domain.Mood{domain.MoodHappy, domain.MoodSad, domain.MoodTired, domain.MoodAdventurous, domain.MoodLazy} {
		assert.Empty(t, FilterByMood(recipes, m), "mood %s", m)
	}
	assert.Len(t, FilterByMood(recipes, domain.MoodNeutral), 1)
}

func TestFilterIdempotent(t *testing.T) {
	recipes := sampleRecipes()
	moods := []domain.Mood{domain.MoodHappy, domain.MoodSad, domain.MoodTired, domain.MoodAdventurous, domain.MoodLazy, domain.MoodNeutral}
	keywords := []string{"", "a", "soup", "400g"}

	for _, m := range moods {
		for _, k := range keywords {
			once := Filter(recipes, k, m)
			twice := Filter(once, k, m)
			if diff := cmp.Diff(ids(once), ids(twice)); diff != "" {
				t.Fatalf("Filter not idempotent for keyword=%q mood=%s:\n%s", k, m, diff)
			}
		}
	}
}

func TestFilterEmptyKeywordIdentity(t *testing.T) {
	recipes := sampleRecipes()
	got := FilterByKeyword(recipes, "")
	if diff := cmp.Diff(recipes, got); diff != "" {
		t.Fatalf("empty keyword changed input (-want +got):\n%s", diff)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	recipes := sampleRecipes()
	reversed := make([]domain.Recipe, len(recipes))
	for i := range recipes {
		reversed[len(recipes)-1-i] = recipes[i]
	}
	assert.Equal(t, []string{"5", "2"}, ids(Filter(reversed, "", domain.MoodAdventurous)))
}

func TestSuggest(t *testing.T) {
	var recipes []domain.Recipe
	for _, name := range []string{"Chicken Alfredo", "Chicken Curry", "Beef Stew", "Chicken Handi", "Chicken Karaage", "Chicken Congee", "Chicken Parmentier"} {
		recipes = append(recipes, domain.Recipe{ID: name, Name: name})
	}

	got := Suggest(recipes, "chicken")
	assert.Equal(t, []string{"Chicken Alfredo", "Chicken Curry", "Chicken Handi", "Chicken Karaage", "Chicken Congee"}, got)

	assert.Equal(t, []string{"Beef Stew"}, Suggest(recipes, "STEW"))
	assert.Empty(t, Suggest(recipes, "tofu"))
}

func TestSuggestIgnoresIngredients(t *testing.T) {
	assert.Empty(t, Suggest(sampleRecipes(), "potato"))
}

func TestSearchByName(t *testing.T) {
	got := SearchByName(sampleRecipes(), "leek soup")
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilterCollection(t *testing.T) {
	recipes := sampleRecipes()
	favorites := []string{"1", "2"}
	completed := []string{"2", "3"}

	tests := []struct {
		kind string
		want []string
	}{
		{domain.CollectionFavorite, []string{"1", "2"}},
		{domain.CollectionCompleted, []string{"2", "3"}},
		{domain.CollectionBoth, []string{"2"}},
		{domain.CollectionAll, []string{"1", "2", "3", "4", "5"}},
		{"", []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterCollection(recipes, favorites, completed, tt.kind)))
		})
	}
}
