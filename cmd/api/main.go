package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gbmahou1/boardcamp-backend/internal/config"
	dbpkg "github.com/gbmahou1/boardcamp-backend/internal/db"
	"github.com/gbmahou1/boardcamp-backend/internal/middleware"
	"github.com/gbmahou1/boardcamp-backend/internal/routes"
	"github.com/gbmahou1/boardcamp-backend/internal/validators"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := validators.Register(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
