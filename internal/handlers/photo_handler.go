package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/storage"
)

type PhotoHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStore
}

func NewPhotoHandler(db *gorm.DB, photos *storage.PhotoStore) *PhotoHandler {
	return &PhotoHandler{db: db, photos: photos}
}

// Upload replaces a restaurant's photo. The file is re-encoded as WebP and
// stored to S3; only the resulting URL lands in the database.
func (h *PhotoHandler) Upload(c *gin.Context) {
	if h.photos == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "photo_storage_disabled", "Photo storage is not configured.")
		return
	}

	var restaurant models.Restaurant
	if err := h.db.First(&restaurant, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Could not read the uploaded file.")
		return
	}
	defer src.Close()

	url, err := h.photos.UploadRestaurantPhoto(
		c.Request.Context(),
		restaurant.ID,
		src,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Could not store the photo.")
		return
	}

	restaurant.PhotoURL = url
	if err := h.db.Save(&restaurant).Error; err != nil {
		httperr.Internal(c, "failed_to_update_restaurant", "Could not save the photo URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
