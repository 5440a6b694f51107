package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/optombazar7-cpu/SportZone/controllers/user"
	"github.com/optombazar7-cpu/SportZone/middleware"
	"github.com/optombazar7-cpu/SportZone/store"
)

func SetupUserRoutes(r *gin.Engine, st *store.Store) {
	user := r.Group("/api/user")
	user.Use(middleware.ValidateToken)
	{
		user.GET("/:id", userControllers.GetProfile(st))
	}
}
