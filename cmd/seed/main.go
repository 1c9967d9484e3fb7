// Seeds a local database with a demo account and a handful of recipes.
package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/recipedex/backend/config"
	"github.com/recipedex/backend/internal/database"
	"github.com/recipedex/backend/internal/models"
)

var demoRecipes = []models.Recipe{
	{
		Category:    models.CategoryVeg,
		Name:        "Detox Rainbow Roll-Ups with Peanut Sauce",
		Description: "A rainbow roll-up built around carrots, chickpeas, red cabbage and dark leafy greens.",
		Ingredients: "3/4 cup peanut butter, 1/4 cup soy sauce, 1/4 cup rice vinegar, 1/4 cup water, 2 tablespoons honey, 1 clove garlic",
		Method:      "1. Trim the stem of the collard leaf. 2. Arrange your fillings on the leaf. 3. Roll tightly and slice.",
	},
	{
		Category:    models.CategoryVeg,
		Name:        "Dal Tadka",
		Description: "Yellow lentils tempered with ghee, cumin and garlic.",
		Ingredients: "1 cup toor dal, 2 tbsp ghee, 1 tsp cumin seeds, 3 cloves garlic, 1 onion, 2 tomatoes",
		Method:      "1. Pressure cook the dal. 2. Temper spices in ghee. 3. Combine and simmer.",
	},
	{
		Category:    models.CategoryNonVeg,
		Name:        "Butter Chicken",
		Description: "Grilled chicken simmered in a creamy tomato gravy.",
		Ingredients: "500g chicken, 2 tbsp butter, 1 cup tomato puree, 1/2 cup cream, garam masala",
		Method:      "1. Marinate and grill the chicken. 2. Simmer in the gravy. 3. Finish with cream.",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db.DB, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	username := "demo"
	user := models.User{
		Username:     &username,
		PasswordHash: string(hash),
		Email:        "demo@example.com",
		IsActive:     true,
	}
	if err := db.Where("username = ?", username).FirstOrCreate(&user).Error; err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	log.Printf("Seeded user %q (id=%d)", username, user.ID)

	for _, recipe := range demoRecipes {
		recipe.UserID = &user.ID
		if err := db.Where("name = ?", recipe.Name).FirstOrCreate(&recipe).Error; err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", recipe.Name, err)
		}
		log.Printf("Seeded recipe %q", recipe.Name)
	}
}
