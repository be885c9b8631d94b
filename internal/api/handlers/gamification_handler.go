package handlers

import (
	"moodbite/domain"
	"moodbite/internal/api/presenters"
	"moodbite/pkg/gamification"
	"moodbite/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GamificationHandler interface {
		GetPet(c *fiber.Ctx) error
		SetPetMood(c *fiber.Ctx) error
		Feed(c *fiber.Ctx) error
		GetMissions(c *fiber.Ctx) error
		ToggleFavorite(c *fiber.Ctx) error
		ToggleCompleted(c *fiber.Ctx) error
		RecordInstructionsView(c *fiber.Ctx) error
	}

	gamificationHandler struct {
		gamificationService gamification.GamificationService
		recipeService       recipe.RecipeService
		validator           *validator.Validate
	}
)

func NewGamificationHandler(
	gamificationService gamification.GamificationService,
	recipeService recipe.RecipeService,
	validator *validator.Validate,
) GamificationHandler {
	return &gamificationHandler{
		gamificationService: gamificationService,
		recipeService:       recipeService,
		validator:           validator,
	}
}

func (h *gamificationHandler) GetPet(c *fiber.Ctx) error {
	res, err := h.gamificationService.GetPet(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPet, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPet)
}

func (h *gamificationHandler) SetPetMood(c *fiber.Ctx) error {
	req := new(domain.SetPetMoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetMood, err)
	}

	res, err := h.gamificationService.SetMood(c.Context(), domain.PetMood(req.Mood))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSetMood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetMood)
}

func (h *gamificationHandler) Feed(c *fiber.Ctx) error {
	recipeID, err := h.recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedFeedPet, err)
	}

	res, err := h.gamificationService.Feed(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedFeedPet, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFeedPet)
}

func (h *gamificationHandler) GetMissions(c *fiber.Ctx) error {
	res, err := h.gamificationService.GetMissions(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMissions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMissions)
}

func (h *gamificationHandler) ToggleFavorite(c *fiber.Ctx) error {
	recipeID, err := h.recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleFavorite, err)
	}

	res, err := h.gamificationService.ToggleFavorite(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleFavorite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleFavorite)
}

func (h *gamificationHandler) ToggleCompleted(c *fiber.Ctx) error {
	recipeID, err := h.recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleCompleted, err)
	}

	res, err := h.gamificationService.ToggleCompleted(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedToggleCompleted, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleCompleted)
}

func (h *gamificationHandler) RecordInstructionsView(c *fiber.Ctx) error {
	if _, err := h.recipeID(c); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedInstructionsView, err)
	}

	res, err := h.gamificationService.RecordInstructionsView(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedInstructionsView, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessInstructionsView)
}

// recipeID resolves the :id param against the loaded dataset so unknown ids
// never reach the persisted records.
func (h *gamificationHandler) recipeID(c *fiber.Ctx) (string, error) {
	r, err := h.recipeService.GetRecipeByID(c.Context(), c.Params("id"))
	if err != nil {
		return "", err
	}
	return r.ID, nil
}
