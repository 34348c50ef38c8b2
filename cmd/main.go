package main

import (
	"github.com/gin-gonic/gin"

	"github.com/rezaali07/NextLearn-backend/internal/app"
	"github.com/rezaali07/NextLearn-backend/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}
