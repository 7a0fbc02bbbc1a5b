// Package config reúne la configuración de ejecución leída del ambiente.
package config

import (
	"os"
	"strings"
)

// Config agrupa los valores configurables del servicio.
type Config struct {
	Port             string
	DatabaseURL      string
	GinMode          string
	LogLevel         string
	LogFile          string
	CORSAllowOrigins []string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load arma la configuración desde variables de ambiente con defaults
// pensados para desarrollo local (sqlite en un archivo, CORS abierto).
func Load() Config {
	origins := strings.Split(getenv("CORS_ALLOW_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return Config{
		Port:             getenv("PORT", "8000"),
		DatabaseURL:      getenv("DATABASE_URL", "ecommerce.db"),
		GinMode:          getenv("GIN_MODE", "debug"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFile:          getenv("LOG_FILE", ""),
		CORSAllowOrigins: origins,
	}
}
