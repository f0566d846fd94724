package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/JoaoAlves313/streak/internal/config"
	"github.com/JoaoAlves313/streak/internal/serverapp"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load("streak_config.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	config.ApplyEnv(&cfg.Balance)

	handler, _, err := serverapp.NewHandler(context.Background(), serverapp.Options{
		Config: cfg,
		APIKey: serverapp.APIKeyFromEnv(),
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
