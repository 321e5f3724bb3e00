package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/railcoach/SpringShop/config"
	"github.com/railcoach/SpringShop/models"
	"github.com/railcoach/SpringShop/routers"
)

func main() {
	models.InitDB()

	if config.RunMode == "prod" || config.RunMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	routers.SpringRouters(r)

	addr := config.MainRouter
	if addr == "" {
		addr = ":8426"
	}
	config.Log.Infow("Spring shop service starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		config.Log.Fatalw("Server exited", "error", err)
	}
}
