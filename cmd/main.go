package main

import (
	"os"

	"github.com/mohdrafey1/FitTrack-sub000/config"
	"github.com/mohdrafey1/FitTrack-sub000/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
