package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/ebsaroptics/optical-center-api/internal/auth"
	"github.com/ebsaroptics/optical-center-api/internal/config"
	dbpkg "github.com/ebsaroptics/optical-center-api/internal/db"
	"github.com/ebsaroptics/optical-center-api/internal/middleware"
	"github.com/ebsaroptics/optical-center-api/internal/routes"
	"github.com/ebsaroptics/optical-center-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := auth.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed console employee: %v", err)
	}

	var imageStore storage.ImageStore
	if cfg.S3AccessKey != "" {
		imageStore = storage.NewS3Store(cfg)
	} else {
		log.Println("no S3 credentials configured, using in-memory image store")
		imageStore = storage.NewMemoryStore()
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, imageStore, rdb)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
