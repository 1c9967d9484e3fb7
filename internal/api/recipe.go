package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipedex/backend/internal/middleware"
	"github.com/recipedex/backend/internal/service"
)

// maxImageSize caps recipe image uploads at 5 MiB
const maxImageSize = 5 << 20

// RecipeHandler serves the recipe resource. All routes sit behind the token
// authentication gate.
type RecipeHandler struct {
	recipeService *service.RecipeService
	imageService  *service.ImageService
}

// NewRecipeHandler creates a new recipe handler. imageService may be nil
// when no object storage is configured.
func NewRecipeHandler(recipeService *service.RecipeService, imageService *service.ImageService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, imageService: imageService}
}

// RegisterRoutes registers the recipe endpoints on an authenticated group
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.POST("", h.Create)
		recipes.PATCH("", h.Update)
		recipes.DELETE("", h.Delete)
		recipes.PUT("/:id/image", h.UploadImage)
	}
}

// List handles GET /recipes with optional category/id/name/user filters
func (h *RecipeHandler) List(c *gin.Context) {
	filter := service.FilterFromQuery(
		c.Query("category"),
		c.Query("id"),
		c.Query("name"),
		c.Query("user"),
	)

	recipes, err := h.recipeService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.InternalError(c, err)
		return
	}

	if len(recipes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": "No recipes found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food Recipe List",
		"data":    recipes,
	})
}

// Create handles POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid request body"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}

	errs, err := h.recipeService.Create(c.Request.Context(), req.payload(), user.ID)
	if err != nil {
		middleware.InternalError(c, err)
		return
	}
	if !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "fail",
			"message": "Validation error occurred.",
			"errors":  errs,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food recipe created successfully.",
	})
}

// Update handles PATCH /recipes, applying only the supplied fields
func (h *RecipeHandler) Update(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid request body"})
		return
	}

	if req.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Please enter the recipe id"})
		return
	}

	errs, err := h.recipeService.Update(c.Request.Context(), *req.ID, req.payload())
	if err != nil {
		middleware.InternalError(c, err)
		return
	}
	if !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "fail",
			"message": "Invalid data",
			"errors":  errs,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food recipe updated successfully",
	})
}

// Delete handles DELETE /recipes with the id in the body
func (h *RecipeHandler) Delete(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid request body"})
		return
	}

	if req.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Please enter the recipe id"})
		return
	}

	err := h.recipeService.Delete(c.Request.Context(), *req.ID)
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "fail",
			"message": "Given id does not match with existing recipes",
		})
		return
	}
	if err != nil {
		middleware.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food recipe deleted successfully",
	})
}

// UploadImage handles PUT /recipes/:id/image with a multipart "image" part
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "fail",
			"message": "Image storage is not configured",
		})
		return
	}

	var uri struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Please enter the recipe id"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Missing image file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		middleware.InternalError(c, err)
		return
	}
	if len(data) > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Image too large"})
		return
	}

	url, err := h.imageService.AttachRecipeImage(c.Request.Context(), uri.ID, data, header.Header.Get("Content-Type"))
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": "Given id does not match with existing recipes",
		})
		return
	}
	if err != nil {
		middleware.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Image uploaded successfully",
		"image_url": url,
	})
}
