package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGetSuggestions  = "success get suggestions"
	MessageSuccessExport          = "export generated successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGetSuggestions  = "failed to get suggestions"
	MessageFailedExport          = "failed to generate export"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrDatasetUnavailable = errors.New("recipe dataset unavailable")
	ErrDatasetMalformed   = errors.New("recipe dataset malformed")
	ErrUnsupportedSource  = errors.New("unsupported dataset source")
)

// MaxIngredientSlots is the number of strIngredientN/strMeasureN pairs a meal can carry.
const MaxIngredientSlots = 20

// MaxSuggestions caps the autocomplete list.
const MaxSuggestions = 5

// Collection kinds for the "my recipes" tabs.
const (
	CollectionAll       = "all"
	CollectionFavorite  = "favorite"
	CollectionCompleted = "completed"
	CollectionBoth      = "both"
)

type (
	// IngredientSlot is one present strIngredientN entry with its measure.
	IngredientSlot struct {
		Slot       int    `json:"slot"`
		Ingredient string `json:"ingredient"`
		Measure    string `json:"measure"`
	}

	// Recipe is a meal from the dataset. It is never mutated after load.
	Recipe struct {
		ID           string
		Name         string
		Category     string
		Area         string
		Tags         string
		Instructions string
		Thumbnail    string
		Ingredients  []IngredientSlot
	}

	RecipeSummary struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Category    string `json:"category,omitempty"`
		Area        string `json:"area,omitempty"`
		Thumbnail   string `json:"thumbnail,omitempty"`
		IsFavorite  bool   `json:"is_favorite"`
		IsCompleted bool   `json:"is_completed"`
	}

	RecipeDetail struct {
		RecipeSummary
		Tags         string   `json:"tags,omitempty"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
	}

	RecipeListRequest struct {
		Keyword string `query:"q"`
		Mood    string `query:"mood" validate:"omitempty,oneof=auto happy sad tired adventurous lazy neutral"`
	}

	CollectionRequest struct {
		Filter string `query:"filter" validate:"omitempty,oneof=all favorite completed both"`
	}

	RecipeListResponse struct {
		Mood    Mood            `json:"mood"`
		Recipes []RecipeSummary `json:"recipes"`
		Total   int             `json:"total"`
	}

	// Dataset is the raw document the loader reads.
	Dataset struct {
		Meals []Recipe `json:"meals"`
	}
)

// UnmarshalJSON decodes the strMeal/strIngredientN document shape into a Recipe.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	field := func(key string) string {
		v, ok := raw[key]
		if !ok {
			return ""
		}
		var s *string
		if err := json.Unmarshal(v, &s); err == nil {
			if s == nil {
				return ""
			}
			return *s
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			return n.String()
		}
		return ""
	}

	*r = Recipe{
		ID:           field("idMeal"),
		Name:         field("strMeal"),
		Category:     field("strCategory"),
		Area:         field("strArea"),
		Tags:         field("strTags"),
		Instructions: field("strInstructions"),
		Thumbnail:    field("strMealThumb"),
	}

	for i := 1; i <= MaxIngredientSlots; i++ {
		n := strconv.Itoa(i)
		ingredient := field("strIngredient" + n)
		if strings.TrimSpace(ingredient) == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, IngredientSlot{
			Slot:       i,
			Ingredient: ingredient,
			Measure:    field("strMeasure" + n),
		})
	}
	return nil
}

// MarshalJSON writes the Recipe back in the dataset shape.
func (r Recipe) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"idMeal":          r.ID,
		"strMeal":         r.Name,
		"strCategory":     r.Category,
		"strArea":         r.Area,
		"strTags":         r.Tags,
		"strInstructions": r.Instructions,
		"strMealThumb":    r.Thumbnail,
	}
	for _, slot := range r.Ingredients {
		n := strconv.Itoa(slot.Slot)
		out["strIngredient"+n] = slot.Ingredient
		out["strMeasure"+n] = slot.Measure
	}
	return json.Marshal(out)
}

// IngredientLines renders each present slot as "<measure> <ingredient>".
func (r *Recipe) IngredientLines() []string {
	lines := make([]string, 0, len(r.Ingredients))
	for _, slot := range r.Ingredients {
		lines = append(lines, strings.TrimSpace(slot.Measure+" "+slot.Ingredient))
	}
	return lines
}

// Steps splits the instructions into trimmed, non-empty lines.
func (r *Recipe) Steps() []string {
	normalized := strings.ReplaceAll(r.Instructions, "\r\n", "\n")
	var steps []string
	for _, line := range strings.Split(normalized, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		Area:      r.Area,
		Thumbnail: r.Thumbnail,
	}
}
