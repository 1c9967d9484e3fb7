package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipedex/backend/config"
	"github.com/recipedex/backend/internal/models"
)

// ImageService stores recipe images in S3 and records the public URL on the
// recipe row
type ImageService struct {
	db *gorm.DB
	s3 *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(db *gorm.DB, s3cfg *config.S3Config) *ImageService {
	return &ImageService{db: db, s3: s3cfg}
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// AttachRecipeImage uploads image data for an existing recipe and saves the
// resulting URL. Returns ErrRecipeNotFound when the id matches nothing.
func (s *ImageService) AttachRecipeImage(ctx context.Context, recipeID uint, data []byte, contentType string) (string, error) {
	db := s.db.WithContext(ctx)

	var recipe models.Recipe
	if err := db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRecipeNotFound
		}
		return "", err
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image content type %q", contentType)
	}

	key := fmt.Sprintf("recipe-images/%s%s", uuid.NewString(), ext)
	_, err := s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := s.s3.ObjectURL(key)
	if err := db.Model(&recipe).Update("image_url", url).Error; err != nil {
		return "", err
	}

	log.Printf("Stored image for recipe %d at %s", recipeID, key)
	return url, nil
}
