package main

import (
	_ "happydeals/docs"
	"happydeals/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Happy Deals Settlement API
// @version         1.0
// @description     Payment initiation, webhook settlement, merchant ledger and payouts backed by DynamoDB.

// @contact.name   API Support
// @contact.email  support@happydeals.app

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
