package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/store"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, st *store.Store) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, st)

	// User routes (JWT-protected)
	SetupUserRoutes(r, st)

	// Catalog routes (public)
	SetupProductRoutes(r, st)

	// Cart routes (session-scoped, public)
	SetupCartRoutes(r, st)

	// Order routes
	SetupOrderRoutes(r, st)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, st)
}
