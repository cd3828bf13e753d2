package config

import (
	"fmt"
	"os"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerPort string

	// Gallery persistence
	GalleryDataPath string // JSON metadata document
	GalleryDir      string // image content directory, served under /gallery
	StorageBackend  string // "local" (default) or "s3"
	S3Bucket        string
	S3Region        string

	// Outbound email
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	BusinessEmail string

	// Admin credentials (single fixed pair; client-side guard only)
	AdminUsername string
	AdminPassword string

	// Company contact details used in confirmation text and emails
	CompanyName  string
	CompanyPhone string

	// Optional generative-text collaborator
	GeminiAPIKey string

	CORSOrigins string
}

// LoadConfig reads configuration from environment variables, applying
// defaults that match the development setup.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("PORT", "3001"),
		GalleryDataPath: getEnv("GALLERY_DATA_PATH", "public/gallery-data.json"),
		GalleryDir:      getEnv("GALLERY_DIR", "public/gallery"),
		StorageBackend:  getEnv("STORAGE_BACKEND", "local"),
		S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", "Care Refrigeration"),
		SMTPFromEmail:   getEnv("SMTP_FROM_EMAIL", "noreply@carerefrigeration.com"),
		BusinessEmail:   os.Getenv("BUSINESS_EMAIL"),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "CareRefrig2024!"),
		CompanyName:     getEnv("COMPANY_NAME", "Care Refrigeration"),
		CompanyPhone:    getEnv("COMPANY_PHONE", "+91 9819 124 194"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
	}

	if cfg.StorageBackend != "local" && cfg.StorageBackend != "s3" {
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want local or s3)", cfg.StorageBackend)
	}
	if cfg.StorageBackend == "s3" && cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME is required when STORAGE_BACKEND=s3")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
