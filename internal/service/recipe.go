package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/models"
	"github.com/recipedex/backend/internal/validation"
)

// ErrRecipeNotFound is returned when an id matches no existing recipe
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeFilter is a conjunctive filter over the recipe store. Zero-value
// fields impose no constraint.
type RecipeFilter struct {
	Category string
	ID       string
	Name     string
	User     string
}

// FilterFromQuery translates optional query parameters into a filter. A
// category outside the fixed enumeration is silently dropped, not an error.
func FilterFromQuery(category, id, name, user string) RecipeFilter {
	f := RecipeFilter{ID: id, Name: name, User: user}
	if models.ValidCategory(category) {
		f.Category = category
	}
	return f
}

// likeEscaper neutralizes LIKE metacharacters so a filter value matches as
// a literal substring
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List runs the filter and returns every matching recipe. Constraints are
// combined with AND; name matches case-insensitively on substring.
func (s *RecipeService) List(ctx context.Context, f RecipeFilter) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx)

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.ID != "" {
		query = query.Where("id = ?", f.ID)
	}
	if f.Name != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Name)) + "%"
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
	if f.User != "" {
		query = query.Where("user_id = ?", f.User)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Create validates the payload in full mode, stamps the owner from the
// authenticated principal and persists a new record
func (s *RecipeService) Create(ctx context.Context, p validation.RecipePayload, ownerID uint) (validation.Errors, error) {
	db := s.db.WithContext(ctx)

	if errs := validation.ValidateRecipe(db, p, false); !errs.Empty() {
		return errs, nil
	}

	recipe := models.Recipe{
		Category:    *p.Category,
		Name:        *p.Name,
		Description: *p.Description,
		Ingredients: *p.Ingredients,
		Method:      *p.Method,
		UserID:      &ownerID,
	}
	if err := db.Create(&recipe).Error; err != nil {
		return nil, err
	}

	return nil, nil
}

// Update validates in partial mode and applies only the supplied fields to
// the record with the given id. Matching zero rows is a silent no-op, not
// an error.
func (s *RecipeService) Update(ctx context.Context, id uint, p validation.RecipePayload) (validation.Errors, error) {
	db := s.db.WithContext(ctx)

	if errs := validation.ValidateRecipe(db, p, true); !errs.Empty() {
		return errs, nil
	}

	updates := map[string]interface{}{}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Ingredients != nil {
		updates["ingredients"] = *p.Ingredients
	}
	if p.Method != nil {
		updates["method"] = *p.Method
	}
	if len(updates) == 0 {
		return nil, nil
	}

	if err := db.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return nil, nil
}

// Delete removes the recipe with the given id
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)

	var recipe models.Recipe
	if err := db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	return db.Delete(&recipe).Error
}

// Get retrieves a recipe by id
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}
