package router

import (
	"time"

	"github.com/dotblog/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options 描述路由所需的外部配置。
type Options struct {
	AllowedOrigins []string
	Logger         *zap.Logger
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestID())
	r.Use(handler.RequestLogger(logger))
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/posts", api.ListPosts)
		apiGroup.GET("/posts/:slug", api.GetPostBySlug)
		apiGroup.GET("/tags", api.GetTags)
		apiGroup.GET("/comments", api.ListComments)
		apiGroup.POST("/comments", api.CreateComment)
		apiGroup.POST("/auth/login", api.Login)

		// 需要认证的后台接口
		admin := apiGroup.Group("/admin")
		admin.Use(api.AuthRequired())
		{
			admin.GET("/posts", api.ListAdminPosts)
			admin.GET("/posts/:id", api.GetAdminPost)
			admin.POST("/posts", api.CreatePost)
			admin.PUT("/posts/:id", api.UpdatePost)
			admin.DELETE("/posts/:id", api.DeletePost)

			admin.GET("/comments", api.ListAdminComments)
			admin.PUT("/comments/:id/status", api.UpdateCommentStatus)
			admin.DELETE("/comments/:id", api.DeleteComment)

			admin.POST("/tags", api.CreateTag)
			admin.DELETE("/tags/:id", api.DeleteTag)
		}
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
