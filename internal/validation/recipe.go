package validation

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/models"
)

// RecipePayload carries the supplied recipe fields; nil means the field was
// absent from the request body, which matters in partial mode.
type RecipePayload struct {
	Category    *string
	Name        *string
	Description *string
	Ingredients *string
	Method      *string
}

// requiredRecipeFields is the completeness check order; the first blank
// field wins and the rest are not reported
var requiredRecipeFields = []struct {
	name  string
	value func(RecipePayload) *string
}{
	{"name", func(p RecipePayload) *string { return p.Name }},
	{"description", func(p RecipePayload) *string { return p.Description }},
	{"ingredients", func(p RecipePayload) *string { return p.Ingredients }},
	{"method", func(p RecipePayload) *string { return p.Method }},
	{"category", func(p RecipePayload) *string { return p.Category }},
}

// ValidateRecipe runs the recipe rules. In partial mode the completeness
// check is skipped entirely: any subset of fields, including none, passes.
// Name uniqueness runs in both modes whenever a name is supplied, with no
// exclusion of the record being updated.
func ValidateRecipe(db *gorm.DB, p RecipePayload, partial bool) Errors {
	errs := Errors{}

	nameUnique(db, p, errs)
	categoryChoice(p, errs)

	if !partial && errs.Empty() {
		completeness(p, errs)
	}

	return errs
}

func nameUnique(db *gorm.DB, p RecipePayload, errs Errors) {
	if p.Name == nil || *p.Name == "" {
		return
	}
	var count int64
	db.Model(&models.Recipe{}).Where("name = ?", *p.Name).Count(&count)
	if count > 0 {
		errs.Add("name", "Recipe name must be unique.")
	}
}

func categoryChoice(p RecipePayload, errs Errors) {
	if p.Category == nil || *p.Category == "" {
		return
	}
	if !models.ValidCategory(*p.Category) {
		errs.Add("category", fmt.Sprintf("%q is not a valid choice.", *p.Category))
	}
}

func completeness(p RecipePayload, errs Errors) {
	for _, field := range requiredRecipeFields {
		v := field.value(p)
		if v == nil || *v == "" {
			errs.Add(NonFieldErrors, fmt.Sprintf("%s cannot be blank.", field.name))
			return
		}
	}
}
