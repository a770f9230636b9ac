package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/resale_hub/cmd/docs"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/middleware"
	"github.com/SscSPs/resale_hub/internal/platform/config"
	"github.com/SscSPs/resale_hub/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// authRateLimit throttles the public login and register endpoints per IP.
const authRateLimit = "10-M"

// RegisterValidators adds the custom validation tags to gin's binding validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return validation.RegisterCustom(v)
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	authLimiter, err := middleware.NewLimiter(authRateLimit)
	if err != nil {
		return err
	}
	RegisterAuthRoutes(r.Group("/auth", middleware.IPRateLimit(authLimiter)), services.Auth)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	apiLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	// Auth runs first so the limiter can key on the user.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RateLimit(apiLimiter))

	RegisterCurrencyRoutes(v1, services.Currency)
	RegisterClassifierRoutes(v1, services.Classifier)
	RegisterCustomerRoutes(v1, services.Customer)
	RegisterItemRoutes(v1, services.Item)
	RegisterSettingsRoutes(v1, services.Settings)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
