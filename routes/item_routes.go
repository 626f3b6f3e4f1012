package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-finds/api-go/controllers"
)

func SetupItemRoutes(protected *gin.RouterGroup, itemController *controllers.ItemController) {
	items := protected.Group("/items")
	{
		items.GET("", itemController.ListItems)
		items.POST("/lost", itemController.ReportLostItem)
		items.POST("/found", itemController.ReportFoundItem)
		items.GET("/mine", itemController.MyReports)
		items.GET("/:id", itemController.GetItemDetail)
		items.GET("/:id/matches", itemController.FindMatches)
		items.POST("/:id/matches/confirm", itemController.ConfirmMatch)
		items.POST("/:id/claims", itemController.CreateClaim)
	}

	claims := protected.Group("/claims")
	{
		claims.GET("/mine", itemController.MyClaims)
	}

	protected.GET("/categories", itemController.ListCategories)
}
