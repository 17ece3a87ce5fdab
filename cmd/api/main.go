package main

import (
	_ "renova_contracts/docs"
	"renova_contracts/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Renovation Contracts API
// @version         1.0
// @description     Contract lifecycle service (generation, signatures, milestones, payments, variations) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
