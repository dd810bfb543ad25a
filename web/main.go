package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	port := flag.Int("port", 0, "Port to serve on (overrides the config file)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("Error loading config: %v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", cfg.Server.Port)

	if err := server.NewServer(cfg).Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
