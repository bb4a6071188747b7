package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/danielmerja/stnh/internal/config"
	"github.com/danielmerja/stnh/internal/database"
	"github.com/danielmerja/stnh/internal/handlers"
	"github.com/danielmerja/stnh/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// New wires the router into an HTTP server ready to listen.
func New(cfg *config.Config, db database.Service, handler *handlers.Handler) *http.Server {
	s := &Server{db: db, handler: handler}

	gin.SetMode(cfg.GinMode)
	router := s.RegisterRoutes()

	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	api.Use(middleware.VoterIdentity())
	{
		api.GET("/categories", s.handler.Category.GetCategories)

		api.GET("/posts", s.handler.Post.GetPosts)
		api.GET("/posts/:id", s.handler.Post.GetPost)
		api.POST("/posts/:id/vote", s.handler.Post.VotePost)

		api.POST("/submissions", s.handler.Submission.SubmitPost)
	}

	return r
}
