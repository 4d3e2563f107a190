package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config guarda todos los parámetros de configuración de la aplicación.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	// Cloudflare R2 (API compatible con S3) para archivos subidos:
	// QR de cuentas bancarias, reglamentos, logos y comprobantes de pago.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load carga la configuración desde variables de entorno.
// Opcionalmente lee un archivo .env (útil en desarrollo local).
func Load() (*Config, error) {
	// Si no hay .env no pasa nada, seguimos con el entorno.
	_ = godotenv.Load()

	cfg := &Config{}

	var err error
	if cfg.DatabaseURL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.JWTSecretKey, err = requireEnv("JWT_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.R2AccountID, err = requireEnv("R2_ACCOUNT_ID"); err != nil {
		return nil, err
	}
	if cfg.R2AccessKeyID, err = requireEnv("R2_ACCESS_KEY_ID"); err != nil {
		return nil, err
	}
	if cfg.R2SecretAccessKey, err = requireEnv("R2_SECRET_ACCESS_KEY"); err != nil {
		return nil, err
	}
	if cfg.R2BucketName, err = requireEnv("R2_BUCKET_NAME"); err != nil {
		return nil, err
	}
	if cfg.R2PublicBaseURL, err = requireEnv("R2_PUBLIC_BASE_URL"); err != nil {
		return nil, err
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080" // puerto por defecto
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	return cfg, nil
}

func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	return value, nil
}
