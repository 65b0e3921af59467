package v1

import (
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	TestimonialUC domain.TestimonialUsecase
	HealthUC      usecase.HealthUsecase
	Redis         *goredis.Client // nil uses in-memory rate limiting
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.GlobalRateLimit, cfg.RateLimitWindow(), deps.Redis)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	// Paths the site's front end already calls under {API_BASE}/api
	api := r.Group("/api")
	public := []*gin.RouterGroup{v1, api}

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(cfg.ContactRateLimit, cfg.RateLimitWindow(), deps.Redis))
	NewContactHandler(public, deps.ContactUC, contactLimiter)
	NewTestimonialHandler(public, deps.TestimonialUC)

	// Swagger
	if cfg.SwaggerEnabled {
		v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
