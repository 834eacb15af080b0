package main

import (
	_ "agenda_tecnica/docs"
	"agenda_tecnica/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Agenda técnica API
// @version         1.0
// @description     Field-service activity scheduling: actividades CRUD, dashboard counters and route reports.
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
