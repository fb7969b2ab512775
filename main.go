package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"lifeplan-engine/internal/config"
	"lifeplan-engine/internal/handler"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	paramsFile := os.Getenv("PARAMS_FILE")
	if paramsFile == "" {
		paramsFile = "params.yaml"
	}
	cfg, err := config.Load(paramsFile)
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	h := handler.New(cfg)
	log.Printf("Lifeplan engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, h.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
