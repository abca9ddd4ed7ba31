package config

import (
	"os"
	"strconv"
	"time"
)

// Config agrupa la configuración del servicio, cargada desde el entorno.
type Config struct {
	Port string

	// URL de exportación CSV de la planilla de direcciones. Vacío deshabilita
	// la fuente remota y se usa directamente el dataset local.
	AddressesSheetURL string

	// Ruta al dataset local de clientes ficticios (fallback).
	CustomersFile string

	// Timeout acotado para el fetch remoto de la planilla.
	SheetFetchTimeout time.Duration
}

// Load arma la configuración desde variables de entorno con defaults
// aptos para Cloud Run y para desarrollo local.
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		AddressesSheetURL: os.Getenv("ADDRESSES_SHEET_URL"),
		CustomersFile:     getEnv("CUSTOMERS_FILE", "data/clientes_ficticios.json"),
		SheetFetchTimeout: getEnvDuration("SHEET_FETCH_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
