// Command api serves the woodcraft design HTTP API.
package main

import (
	_ "woodcraft/docs"
	"woodcraft/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Woodcraft Design API
// @version         1.0
// @description     Quotes custom woodworking designs, generates their 3D models
// @description     and follows each design from request to delivery, payments included.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	routes.Run()
}
