package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/TallerHub/taller-quotes-api/internal/config"
	dbpkg "github.com/TallerHub/taller-quotes-api/internal/db"
	"github.com/TallerHub/taller-quotes-api/internal/mailer"
	"github.com/TallerHub/taller-quotes-api/internal/routes"
	"github.com/TallerHub/taller-quotes-api/internal/tokens"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Resets: tokens.NewRedisResetStore(rdb),
		Mail:   mailer.LogMailer{},
		// The PDF renderer is an external service; wire it here when one
		// is available. Document requests answer 501 until then.
		Renderer: nil,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
