package main

import (
	_ "github.com/eleven-am/marketplace-analytics/docs"
	"github.com/eleven-am/marketplace-analytics/internal/bootstrap"
)

// @title Marketplace Analytics API
// @version 1.0.0
// @description Dashboard and per-model analytics for marketplace model owners

// @BasePath /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	bootstrap.Run()
}
