package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ambjay/unveiled-prod/internal/app"
)

func main() {
	// Missing .env is fine; production injects the environment directly.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Log.Info("Server listening", "port", a.Cfg.Port)
	if err := a.Run(":" + a.Cfg.Port); err != nil {
		a.Log.Error("Server failed", "error", err)
	}
}
