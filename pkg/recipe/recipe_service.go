package recipe

import (
	"context"
	"moodbite/domain"
	"moodbite/pkg/mood"
	"moodbite/pkg/record"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error)
		GetSuggestions(ctx context.Context, keyword string) ([]string, error)
		SearchByName(ctx context.Context, name string) (domain.RecipeListResponse, error)
		GetCollection(ctx context.Context, req domain.CollectionRequest) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetail, error)
		GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error)
		CurrentMood(selection string) domain.MoodResponse
		GetAll(ctx context.Context) ([]domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		classifier       *mood.Classifier
		records          *record.Store
	}
)

func NewRecipeService(recipeRepository RecipeRepository, classifier *mood.Classifier, records *record.Store) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		classifier:       classifier,
		records:          records,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	m := s.classifier.CurrentMood(domain.ParseMood(req.Mood))
	filtered := Filter(recipes, req.Keyword, m)
	log.Debugf("filter keyword=%q mood=%s matched %d of %d", req.Keyword, m, len(filtered), len(recipes))

	return s.listResponse(ctx, m, filtered)
}

func (s *recipeService) GetSuggestions(ctx context.Context, keyword string) ([]string, error) {
	if keyword == "" {
		return []string{}, nil
	}
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(recipes, keyword), nil
}

func (s *recipeService) SearchByName(ctx context.Context, name string) (domain.RecipeListResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return s.listResponse(ctx, domain.MoodNeutral, SearchByName(recipes, name))
}

func (s *recipeService) GetCollection(ctx context.Context, req domain.CollectionRequest) (domain.RecipeListResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	favorites, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	completed, err := s.records.LoadCompleted(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	filtered := FilterCollection(recipes, favorites, completed, req.Filter)
	return summarize(domain.MoodNeutral, filtered, toSet(favorites), toSet(completed)), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetail, error) {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	favorites, completed, err := s.flags(ctx)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	summary := r.Summary()
	summary.IsFavorite = favorites[r.ID]
	summary.IsCompleted = completed[r.ID]

	steps := r.Steps()
	if steps == nil {
		steps = []string{}
	}

	return domain.RecipeDetail{
		RecipeSummary: summary,
		Tags:          r.Tags,
		Ingredients:   r.IngredientLines(),
		Instructions:  steps,
	}, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	return s.recipeRepository.GetRecipeByID(ctx, recipeID)
}

func (s *recipeService) CurrentMood(selection string) domain.MoodResponse {
	sel := domain.ParseMood(selection)
	return domain.MoodResponse{
		Selection: sel,
		Mood:      s.classifier.CurrentMood(sel),
	}
}

func (s *recipeService) GetAll(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipeRepository.GetRecipes(ctx)
}

func (s *recipeService) listResponse(ctx context.Context, m domain.Mood, recipes []domain.Recipe) (domain.RecipeListResponse, error) {
	favorites, completed, err := s.flags(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return summarize(m, recipes, favorites, completed), nil
}

func summarize(m domain.Mood, recipes []domain.Recipe, favorites, completed map[string]bool) domain.RecipeListResponse {
	result := make([]domain.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summary := recipes[i].Summary()
		summary.IsFavorite = favorites[recipes[i].ID]
		summary.IsCompleted = completed[recipes[i].ID]
		result = append(result, summary)
	}

	return domain.RecipeListResponse{
		Mood:    m,
		Recipes: result,
		Total:   len(result),
	}
}

func (s *recipeService) flags(ctx context.Context) (map[string]bool, map[string]bool, error) {
	favorites, err := s.records.LoadFavorites(ctx)
	if err != nil {
		return nil, nil, err
	}
	completed, err := s.records.LoadCompleted(ctx)
	if err != nil {
		return nil, nil, err
	}
	return toSet(favorites), toSet(completed), nil
}
