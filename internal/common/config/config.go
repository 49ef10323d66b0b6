package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	GatewayPort  string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int

	CatalogDBPath string
	GeneratedDir  string
	MeshSegments  int
	GeneratorURL  string
}

// Load загружает .env (если есть) и конфигурацию из переменных окружения.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "5000"),
		GatewayPort:   getEnv("GATEWAY_PORT", "3000"),
		Environment:   getEnv("ENV", "development"),
		ReadTimeout:   getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout:  getEnvAsInt("WRITE_TIMEOUT", 30),
		BodyLimit:     getEnvAsInt("BODY_LIMIT", 16*1024*1024),
		CatalogDBPath: getEnv("CATALOG_DB_PATH", "data/outlets.db"),
		GeneratedDir:  getEnv("GENERATED_DIR", "generated"),
		MeshSegments:  getEnvAsInt("MESH_SEGMENTS", 12),
		GeneratorURL:  getEnv("GENERATOR_URL", "http://localhost:5000"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
