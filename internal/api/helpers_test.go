package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/api"
	"github.com/recipedex/backend/internal/models"
	"github.com/recipedex/backend/internal/router"
	"github.com/recipedex/backend/internal/service"
	"github.com/recipedex/backend/internal/session"
	"github.com/recipedex/backend/internal/testhelpers"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	sessions := session.NewStore(db, nil, session.NoExpiry{})
	authHandler := api.NewAuthHandler(service.NewAuthService(db, sessions))
	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db), nil)

	return router.SetupRouter(authHandler, recipeHandler, sessions, db), db
}

// performJSON issues a request with an optional JSON body and token
func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func seedRecipe(t *testing.T, db *gorm.DB, name, category string, ownerID *uint) models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		Category:    category,
		Name:        name,
		Description: "a description",
		Ingredients: "some ingredients",
		Method:      "some method",
		UserID:      ownerID,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to seed recipe: %v", err)
	}
	return recipe
}
