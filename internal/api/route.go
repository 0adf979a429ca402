package api

import (
	"Kazuru/internal/api/middleware"
	"Kazuru/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// Kept verbatim from the php board, old bookmarks still resolve.
	r.GET("/index.php", group.LegacyHandler.Index)

	// Same-origin image relay, cacheable forever.
	r.GET("/images/*path", group.MediaHandler.Serve)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/email", group.UserHandler.ChangeEmail)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
				authGroup.DELETE("", group.UserHandler.DeleteAccount)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				// exact routes like /self resolve before the param route
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/self", group.PostHandler.GetPostsSelf)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

				authGroup.POST("/upload", group.UploadHandler.Upload)
				authGroup.POST("/upload/signature", group.UploadHandler.SignUpload)
			}
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("/search", group.TagHandler.SearchTags)
		}
	}

	return r
}
