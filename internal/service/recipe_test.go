package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/models"
	"github.com/recipedex/backend/internal/service"
	"github.com/recipedex/backend/internal/testhelpers"
	"github.com/recipedex/backend/internal/validation"
)

func strptr(s string) *string { return &s }

func seedRecipes(t *testing.T, db *gorm.DB) (veg, nonveg models.Recipe) {
	t.Helper()

	owner := testhelpers.CreateTestUser(t, db, "chef", "tok")

	veg = models.Recipe{
		Category:    models.CategoryVeg,
		Name:        "Detox Rainbow Roll-Ups",
		Description: "Collard wraps with peanut sauce",
		Ingredients: "peanut butter, soy sauce, rice vinegar",
		Method:      "Trim the stem, arrange fillings, roll.",
		UserID:      &owner.ID,
	}
	nonveg = models.Recipe{
		Category:    models.CategoryNonVeg,
		Name:        "Butter Chicken",
		Description: "Creamy tomato gravy",
		Ingredients: "chicken, butter, cream",
		Method:      "Marinate, grill, simmer.",
		UserID:      &owner.ID,
	}
	require.NoError(t, db.Create(&veg).Error)
	require.NoError(t, db.Create(&nonveg).Error)
	return veg, nonveg
}

func TestListNoFilter(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	recipes, err := svc.List(context.Background(), service.RecipeFilter{})
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestListCategoryFilter(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	recipes, err := svc.List(context.Background(), service.FilterFromQuery("VEG", "", "", ""))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Detox Rainbow Roll-Ups", recipes[0].Name)
}

func TestListInvalidCategoryIgnored(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	// An unknown category imposes no constraint at all
	recipes, err := svc.List(context.Background(), service.FilterFromQuery("INVALID", "", "", ""))
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestListNameSubstringCaseInsensitive(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	recipes, err := svc.List(context.Background(), service.FilterFromQuery("", "", "rainbow", ""))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Detox Rainbow Roll-Ups", recipes[0].Name)
}

func TestListNameWildcardsMatchLiterally(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	// "b%c" is not a substring of any name even though the pattern
	// "%b%c%" would match "Butter Chicken"
	recipes, err := svc.List(context.Background(), service.FilterFromQuery("", "", "b%c", ""))
	require.NoError(t, err)
	assert.Empty(t, recipes)

	recipes, err = svc.List(context.Background(), service.FilterFromQuery("", "", "roll_ups", ""))
	require.NoError(t, err)
	assert.Empty(t, recipes)

	pct := models.Recipe{Category: models.CategoryVeg, Name: "100% Rye Bread"}
	require.NoError(t, db.Create(&pct).Error)

	recipes, err = svc.List(context.Background(), service.FilterFromQuery("", "", "100% rye", ""))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, pct.ID, recipes[0].ID)
}

func TestListConjunction(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	veg, _ := seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	// category AND name must both hold
	recipes, err := svc.List(context.Background(), service.FilterFromQuery("NON-VEG", "", "rainbow", ""))
	require.NoError(t, err)
	assert.Empty(t, recipes)

	recipes, err = svc.List(context.Background(), service.FilterFromQuery("VEG", "", "rainbow", ""))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, veg.ID, recipes[0].ID)
}

func TestListByOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	veg, _ := seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	other := testhelpers.CreateTestUser(t, db, "other", "tok2")
	orphan := models.Recipe{Category: models.CategoryVeg, Name: "Plain Rice", UserID: &other.ID}
	require.NoError(t, db.Create(&orphan).Error)

	recipes, err := svc.List(context.Background(), service.RecipeFilter{User: "1"})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, *veg.UserID, uint(1))
}

func TestCreateStampsOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	owner := testhelpers.CreateTestUser(t, db, "chef", "tok")
	svc := service.NewRecipeService(db)

	errs, err := svc.Create(context.Background(), validation.RecipePayload{
		Category:    strptr(models.CategoryVeg),
		Name:        strptr("Dal Tadka"),
		Description: strptr("Yellow lentils"),
		Ingredients: strptr("toor dal, ghee, cumin"),
		Method:      strptr("Boil, temper, serve."),
	}, owner.ID)
	require.NoError(t, err)
	require.True(t, errs.Empty())

	var recipe models.Recipe
	require.NoError(t, db.Where("name = ?", "Dal Tadka").First(&recipe).Error)
	require.NotNil(t, recipe.UserID)
	assert.Equal(t, owner.ID, *recipe.UserID)
}

func TestCreateDuplicateName(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	errs, err := svc.Create(context.Background(), validation.RecipePayload{
		Category:    strptr(models.CategoryNonVeg),
		Name:        strptr("Butter Chicken"),
		Description: strptr("d"),
		Ingredients: strptr("i"),
		Method:      strptr("m"),
	}, 1)
	require.NoError(t, err)
	require.Contains(t, errs, "name")
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	veg, _ := seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	errs, err := svc.Update(context.Background(), veg.ID, validation.RecipePayload{
		Description: strptr("new description"),
	})
	require.NoError(t, err)
	require.True(t, errs.Empty())

	var got models.Recipe
	require.NoError(t, db.First(&got, veg.ID).Error)
	assert.Equal(t, "new description", got.Description)
	assert.Equal(t, veg.Name, got.Name)
	assert.Equal(t, veg.Method, got.Method)
}

func TestUpdateZeroRowsIsSilentSuccess(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewRecipeService(db)

	errs, err := svc.Update(context.Background(), 9999, validation.RecipePayload{
		Description: strptr("nobody home"),
	})
	require.NoError(t, err)
	assert.True(t, errs.Empty())
}

func TestDelete(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	veg, _ := seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	require.NoError(t, svc.Delete(context.Background(), veg.ID))

	_, err := svc.Get(context.Background(), veg.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestCreateReusesNameAfterDelete(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	_, nonveg := seedRecipes(t, db)
	svc := service.NewRecipeService(db)

	require.NoError(t, svc.Delete(context.Background(), nonveg.ID))

	// The unique index only covers live rows, so the name is free again
	errs, err := svc.Create(context.Background(), validation.RecipePayload{
		Category:    strptr(models.CategoryNonVeg),
		Name:        strptr("Butter Chicken"),
		Description: strptr("Second attempt"),
		Ingredients: strptr("chicken, butter, cream"),
		Method:      strptr("Marinate, grill, simmer."),
	}, 1)
	require.NoError(t, err)
	assert.True(t, errs.Empty())
}

func TestDeleteMissing(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewRecipeService(db)

	err := svc.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}
