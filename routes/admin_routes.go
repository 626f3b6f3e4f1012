package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-finds/api-go/controllers"
)

func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController) {
	admin.GET("/dashboard", adminController.Dashboard)
	admin.GET("/users", adminController.ListUsers)
	admin.GET("/items", adminController.ListReports)
	admin.POST("/items/found", adminController.SubmitFoundItem)

	claims := admin.Group("/claims")
	{
		claims.GET("", adminController.ListClaims)
		claims.POST("/:id/approve", adminController.ApproveClaim)
		claims.POST("/:id/reject", adminController.RejectClaim)
		claims.POST("/:id/collect", adminController.MarkCollected)
	}
}
