package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// LoadEnv loads variables from a .env file if one is present. Missing .env is
// fine in production where everything comes from the real environment.
func LoadEnv() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			if _, statErr := os.Stat(".env"); statErr == nil {
				log.Printf("Failed to load .env file: %v", err)
			}
		}
	})
}
