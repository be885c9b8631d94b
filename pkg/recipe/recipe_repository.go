package recipe

import (
	"context"
	"moodbite/domain"
	"sync"
)

type (
	// RecipeRepository holds the loaded dataset. Replace swaps the whole
	// snapshot; readers never see a partial dataset.
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]domain.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error)
		Replace(ctx context.Context, recipes []domain.Recipe) error
		Count() int
	}

	recipeRepository struct {
		mu      sync.RWMutex
		recipes []domain.Recipe
		byID    map[string]int
	}
)

func NewRecipeRepository(recipes []domain.Recipe) RecipeRepository {
	r := &recipeRepository{}
	r.swap(recipes)
	return r
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	recipe := r.recipes[i]
	return &recipe, nil
}

func (r *recipeRepository) Replace(ctx context.Context, recipes []domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.swap(recipes)
	return nil
}

func (r *recipeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recipes)
}

func (r *recipeRepository) swap(recipes []domain.Recipe) {
	r.recipes = make([]domain.Recipe, len(recipes))
	copy(r.recipes, recipes)
	r.byID = make(map[string]int, len(recipes))
	for i, recipe := range r.recipes {
		// first occurrence wins on duplicate IDs
		if _, dup := r.byID[recipe.ID]; !dup {
			r.byID[recipe.ID] = i
		}
	}
}
