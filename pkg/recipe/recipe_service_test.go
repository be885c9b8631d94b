package recipe

import (
	"context"
	"testing"
	"time"

	"moodbite/domain"
	"moodbite/pkg/mood"
	"moodbite/pkg/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, hour int) (RecipeService, *record.Store) {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 10, 17, hour, 0, 0, 0, time.UTC) }
	store := record.NewStore(record.NewMemoryRepository())
	svc := NewRecipeService(NewRecipeRepository(sampleRecipes()), mood.NewClassifier(now, time.UTC), store)
	return svc, store
}

func TestRecipeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository(sampleRecipes())

	assert.Equal(t, 5, repo.Count())

	r, err := repo.GetRecipeByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Leek Soup", r.Name)

	_, err = repo.GetRecipeByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	require.NoError(t, repo.Replace(ctx, []domain.Recipe{{ID: "9", Name: "Shakshuka"}}))
	assert.Equal(t, 1, repo.Count())
	_, err = repo.GetRecipeByID(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository(sampleRecipes())

	all, err := repo.GetRecipes(ctx)
	require.NoError(t, err)
	all[0].Name = "changed"

	r, err := repo.GetRecipeByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Apple Frangipan Tart", r.Name)
}

func TestGetRecipesAutoMood(t *testing.T) {
	ctx := context.Background()
	// 12:00 resolves to adventurous.
	svc, _ := newTestService(t, 12)

	res, err := svc.GetRecipes(ctx, domain.RecipeListRequest{Mood: "auto"})
	require.NoError(t, err)
	assert.Equal(t, domain.MoodAdventurous, res.Mood)
	assert.Equal(t, 2, res.Total)

	res, err = svc.GetRecipes(ctx, domain.RecipeListRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.MoodAdventurous, res.Mood)

	res, err = svc.GetRecipes(ctx, domain.RecipeListRequest{Keyword: "leek", Mood: "neutral"})
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, "2", res.Recipes[0].ID)
}

func TestGetRecipesMarksFlags(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, 12)
	require.NoError(t, store.SaveFavorites(ctx, []string{"1"}))
	require.NoError(t, store.SaveCompleted(ctx, []string{"1", "3"}))

	res, err := svc.GetRecipes(ctx, domain.RecipeListRequest{Mood: "neutral"})
	require.NoError(t, err)
	require.Len(t, res.Recipes, 5)
	assert.True(t, res.Recipes[0].IsFavorite)
	assert.True(t, res.Recipes[0].IsCompleted)
	assert.False(t, res.Recipes[1].IsFavorite)
	assert.True(t, res.Recipes[2].IsCompleted)
}

func TestGetSuggestions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, 12)

	got, err := svc.GetSuggestions(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.GetSuggestions(ctx, "na")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nachos"}, got)
}

func TestGetCollection(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, 12)
	require.NoError(t, store.SaveFavorites(ctx, []string{"4", "1"}))

	res, err := svc.GetCollection(ctx, domain.CollectionRequest{Filter: domain.CollectionFavorite})
	require.NoError(t, err)
	assert.Equal(t, domain.MoodNeutral, res.Mood)
	require.Len(t, res.Recipes, 2)
	// dataset order, not favorite order
	assert.Equal(t, "1", res.Recipes[0].ID)
	assert.Equal(t, "4", res.Recipes[1].ID)
}

func TestGetRecipeDetail(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, 12)
	require.NoError(t, store.SaveFavorites(ctx, []string{"2"}))

	detail, err := svc.GetRecipeDetail(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Leek Soup", detail.Name)
	assert.True(t, detail.IsFavorite)
	assert.False(t, detail.IsCompleted)
	assert.Equal(t, []string{"2 Leek", "400g Potatoes"}, detail.Ingredients)
	assert.Equal(t, []string{}, detail.Instructions)

	_, err = svc.GetRecipeDetail(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCurrentMood(t *testing.T) {
	svc, _ := newTestService(t, 23)

	assert.Equal(t, domain.MoodResponse{Selection: domain.MoodAuto, Mood: domain.MoodTired}, svc.CurrentMood(""))
	assert.Equal(t, domain.MoodResponse{Selection: domain.MoodSad, Mood: domain.MoodSad}, svc.CurrentMood("sad"))
}
