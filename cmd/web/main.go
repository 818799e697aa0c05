package main

import (
	"log"

	"devlink_backend/internal/app"
)

// @title           DevLink API
// @version         1.0
// @description     Marketplace backend connecting clients with developers: projects, applications and the conversations they open.

// @host      localhost:4000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
