package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-saas/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-saas/internal/db"
	"github.com/BruksfildServices01/agenda-saas/internal/routes"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s (server tz: %s)", cfg.Addr(), timezone.Detect())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
