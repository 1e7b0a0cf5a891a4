package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	bookingHttp "github.com/quickcourt/quickcourt-backend/internal/booking/http"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	courtHttp "github.com/quickcourt/quickcourt-backend/internal/court/http"
	"github.com/quickcourt/quickcourt-backend/internal/file"
	fileHttp "github.com/quickcourt/quickcourt-backend/internal/file/http"
	"github.com/quickcourt/quickcourt-backend/internal/user"
	userHttp "github.com/quickcourt/quickcourt-backend/internal/user/http"
	"github.com/quickcourt/quickcourt-backend/internal/venue"
	venueHttp "github.com/quickcourt/quickcourt-backend/internal/venue/http"
)

// Config bundles everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string // comma-separated allowed origins in production

	UserService    user.Service
	VenueService   venue.Service
	CourtService   court.Service
	BookingService booking.Service
	FileService    file.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// optionalAuthMiddleware: Populates user info when a token is present.
	optionalAuthMiddleware := auth.AuthOptional(cfg.JWTManager)
	// Role middleware built from the JWT role claim.
	adminMiddleware := RequireAdmin()
	ownerMiddleware := RequireOwner()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	venueHandler := venueHttp.NewHandler(cfg.VenueService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.VenueService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, optionalAuthMiddleware, authMiddleware, ownerMiddleware, adminMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware, ownerMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, ownerMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
	}

	return r
}
