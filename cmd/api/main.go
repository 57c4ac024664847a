package main

import (
	_ "fundilink/docs"
	"fundilink/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FundiLink Marketplace API
// @version         1.0
// @description     Job lifecycle, handshake codes and payments for the services marketplace, backed by DynamoDB and Paystack.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
