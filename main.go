package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/digitpainter/vote-v4/cmd/app"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by /auth/cas-callback
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
