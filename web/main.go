package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-direct-raytracer/pkg/config"
	"github.com/df07/go-direct-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	meshPath := flag.String("obj", "", "OBJ or PLY model for the mesh scene")
	envFile := flag.String("env", ".env", "Environment file with worker settings")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		os.Exit(1)
	}

	// Create and start web server
	webServer := server.NewServer(*port, cfg.Workers, *meshPath)

	log.Printf("Direct Lighting Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=reference", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
