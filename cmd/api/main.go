package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/dwalbeck/job-tracker-sub001/internal/config"
	dbpkg "github.com/dwalbeck/job-tracker-sub001/internal/db"
	"github.com/dwalbeck/job-tracker-sub001/internal/middleware"
	"github.com/dwalbeck/job-tracker-sub001/internal/routes"
	"github.com/dwalbeck/job-tracker-sub001/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.SetDefault(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
