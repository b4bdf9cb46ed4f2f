package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/halleck44/steady/internal/cache"
	"github.com/halleck44/steady/internal/db"
	"github.com/halleck44/steady/internal/models"
)

type recipeView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Carbs       float64 `json:"carbs"`
	Fiber       float64 `json:"fiber"`
	Calories    int     `json:"calories"`
	ImageURL    string  `json:"imageUrl"`
}

type recipePageView struct {
	Recipes []recipeView `json:"recipes"`
	Total   int64        `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func recipeToView(recipe models.Recipe) recipeView {
	return recipeView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Description: recipe.Description,
		Category:    recipe.Category,
		Carbs:       recipe.Carbs,
		Fiber:       recipe.Fiber,
		Calories:    recipe.Calories,
		ImageURL:    recipe.ImageURL,
	}
}

func (handler *Handler) GetRecipes(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	planTier := models.PlanFree
	if user, err := handler.repositories.Users.FindByID(userID); err == nil {
		planTier = user.PlanTier()
	}

	filter := db.RecipeFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    queryInt(c, "limit", 50),
		Offset:   queryInt(c, "offset", 0),
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	// Listings are cached per plan tier so a tier change never serves
	// another tier's catalog view.
	key := cache.RecipeListKey(planTier, filter.Category, filter.Search, filter.Limit, filter.Offset)
	if cached, ok := handler.recipeCache.Get(key); ok {
		if page, ok := cached.(recipePageView); ok {
			return c.JSON(page)
		}
	}

	page, err := handler.repositories.Recipes.ListPaginated(filter)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load recipes")
	}

	views := make([]recipeView, 0, len(page.Items))
	for _, recipe := range page.Items {
		views = append(views, recipeToView(recipe))
	}
	response := recipePageView{
		Recipes: views,
		Total:   page.Total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}
	handler.recipeCache.Set(key, response, cache.RecipeTTL)
	return c.JSON(response)
}

func (handler *Handler) GetRecipe(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recipeID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || recipeID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid recipe id")
	}

	key := cache.RecipeKey(uint(recipeID))
	if cached, ok := handler.recipeCache.Get(key); ok {
		if view, ok := cached.(recipeView); ok {
			return c.JSON(view)
		}
	}

	recipe, found, err := handler.repositories.Recipes.FindByID(uint(recipeID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load recipe")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "recipe not found")
	}

	view := recipeToView(recipe)
	handler.recipeCache.Set(key, view, cache.RecipeTTL)
	return c.JSON(view)
}
