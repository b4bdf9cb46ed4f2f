package db

import (
	"strings"

	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

// RecipeFilter narrows a paginated catalog listing. Zero values mean
// "no constraint".
type RecipeFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type RecipePage struct {
	Items []models.Recipe
	Total int64
}

func (repo *RecipeRepository) ListAll() ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *RecipeRepository) FindByID(recipeID uint) (models.Recipe, bool, error) {
	var recipe models.Recipe
	result := repo.database.Limit(1).Find(&recipe, recipeID)
	if result.Error != nil {
		return models.Recipe{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Recipe{}, false, nil
	}
	return recipe, true, nil
}

func (repo *RecipeRepository) ListPaginated(filter RecipeFilter) (RecipePage, error) {
	query := repo.database.Model(&models.Recipe{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return RecipePage{}, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	items := make([]models.Recipe, 0)
	if err := query.Order("id ASC").Limit(limit).Offset(filter.Offset).Find(&items).Error; err != nil {
		return RecipePage{}, err
	}
	return RecipePage{Items: items, Total: total}, nil
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}
