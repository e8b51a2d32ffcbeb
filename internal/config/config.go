package config

import (
	"elevator-dispatch-service/internal/domain"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the environment when one is present.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// GetPoint reads an "x,y,z" value such as GRID_BOUND.
func GetPoint(key string, fallback domain.Point) domain.Point {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	p, err := domain.ParsePoint(v)
	if err != nil {
		log.Printf("config: %s: %v, using %s", key, err, fallback)
		return fallback
	}
	return p
}
