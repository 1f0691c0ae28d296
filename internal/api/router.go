package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gameverse/content-api/internal/api/handler"
	"github.com/gameverse/content-api/internal/api/middleware"
	"github.com/gameverse/content-api/internal/core/domain"
	"github.com/gameverse/content-api/internal/core/service"
	"github.com/gameverse/content-api/internal/core/token"
	"github.com/gameverse/content-api/internal/infrastructure/config"
	mongodb "github.com/gameverse/content-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gameverse/content-api/internal/infrastructure/db/redis"
	"github.com/gameverse/content-api/internal/upload"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("gameverse"))

	// --- Dependencies ---
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	newsCache := redisdb.NewNewsCache(rdb, log)

	authService := service.NewAuthService(userRepo, tokens)
	newsService := service.NewNewsService(newsRepo, commentRepo, newsCache, log)
	commentService := service.NewCommentService(commentRepo, newsRepo, log)

	images := upload.NewSaver(cfg.Upload.Dir, cfg.Upload.MaxBytes)

	authHandler := handler.NewAuthHandler(authService)
	newsHandler := handler.NewNewsHandler(newsService, images)
	commentHandler := handler.NewCommentHandler(commentService)

	authenticate := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- News routes ---
	news := e.Group("/api/news")
	news.GET("", newsHandler.List)
	news.POST("/add", newsHandler.Create, authenticate, adminOnly)
	news.PUT("/update/:id", newsHandler.Update, authenticate, adminOnly)
	news.GET("/:id", newsHandler.Get)
	news.DELETE("/:id", newsHandler.Delete, authenticate, adminOnly)

	// --- Comment routes ---
	comments := e.Group("/api/comments")
	comments.POST("/add", commentHandler.Add)
	comments.GET("/:newsId", commentHandler.ListByNews)

	// --- Uploaded images, served as-is ---
	e.Static(upload.PublicPrefix, cfg.Upload.Dir)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "GameVerse backend is online")
	})

	return e
}
