package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-finds/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := protected.Group("/uploads")
	{
		uploads.POST("/photos", uploadController.GetPhotoUploadURL)
		uploads.POST("/photos/batch", uploadController.GetMultiplePhotoUploadURLs)
		uploads.DELETE("/photos/:key", uploadController.DeletePhoto)
	}
}
