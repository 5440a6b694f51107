package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/optombazar7-cpu/SportZone/controllers/user"
	"github.com/optombazar7-cpu/SportZone/store"
)

func SetupAuthRoutes(r *gin.Engine, st *store.Store) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", userControllers.Register(st))
		auth.POST("/login", userControllers.Login(st))
	}
}
