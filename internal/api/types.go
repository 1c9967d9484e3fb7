package api

import "github.com/recipedex/backend/internal/validation"

// RegisterRequest is the body for POST /auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RecipeRequest is the write payload for create, partial update and delete.
// Pointer fields distinguish an absent field from a blank one, which is what
// makes partial mode work.
type RecipeRequest struct {
	ID          *uint   `json:"id"`
	Category    *string `json:"category"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Ingredients *string `json:"ingredients"`
	Method      *string `json:"method"`
}

func (r RecipeRequest) payload() validation.RecipePayload {
	return validation.RecipePayload{
		Category:    r.Category,
		Name:        r.Name,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Method:      r.Method,
	}
}
