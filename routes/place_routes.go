package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/places-api/controllers"
)

// SetupPlaceRoutes registers the places API. Reads are public; mutations go
// through guard.
func SetupPlaceRoutes(api *gin.RouterGroup, placeController *controllers.PlaceController, guard gin.HandlerFunc) {
	places := api.Group("/places")
	{
		places.GET("", placeController.ListPlaces)
		places.GET("/:id", placeController.GetPlace)
		places.POST("", guard, placeController.CreatePlace)
		places.PUT("/:id", guard, placeController.UpdatePlace)
		places.DELETE("/:id", guard, placeController.DeletePlace)
	}

	api.GET("/categories", placeController.ListCategories)
	api.GET("/cities", placeController.ListCities)
}
