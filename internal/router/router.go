package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mosaic/internal/auth"
	"mosaic/internal/config"
	"mosaic/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	followHandler *handler.FollowHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/user/register", authHandler.Register)
	api.POST("/user/login", authHandler.Login)
	api.POST("/user/refresh", authHandler.Refresh)
	api.POST("/user/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), BlacklistGuard(tokenStore))

	// User routes
	secured.GET("/user/profile", userHandler.Profile)
	secured.PUT("/user", userHandler.Update)
	secured.PUT("/user/change-password", authHandler.ChangePassword)
	secured.PUT("/user/upload-profile-picture", userHandler.UploadProfilePicture)
	secured.PUT("/user/upload-coverphoto", userHandler.UploadCoverPhoto)
	secured.GET("/user/:id", userHandler.GetByID)
	secured.GET("/user", userHandler.List, AdminOnly)
	secured.DELETE("/user/:id", userHandler.Delete, AdminOnly)

	// Follow routes
	secured.POST("/follow/:id", followHandler.Follow)
	secured.DELETE("/follow/:id", followHandler.Unfollow)
	secured.GET("/follow/:id/followers", followHandler.Followers)
	secured.GET("/follow/:id/following", followHandler.Following)
	secured.GET("/follow/:id/follows", followHandler.Follows)
	secured.GET("/follow/:id/followed-by", followHandler.FollowedBy)

	// Post routes
	secured.POST("/post", postHandler.Create)
	secured.GET("/post", postHandler.List)
	secured.GET("/post/feed", postHandler.Feed)
	secured.GET("/post/:id", postHandler.GetByID)
	secured.PUT("/post/:id", postHandler.Update)
	secured.DELETE("/post/:id", postHandler.Delete)
	secured.POST("/post/:id/like", postHandler.Like)
	secured.DELETE("/post/:id/like", postHandler.Unlike)

	// Comment routes
	secured.POST("/comment/:postId", commentHandler.Create)
	secured.GET("/comment/post/:postId", commentHandler.ListByPost)
	secured.GET("/comment/:commentId", commentHandler.GetByID)
	secured.PUT("/comment/:commentId", commentHandler.Update)
	secured.DELETE("/comment/:commentId", commentHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
