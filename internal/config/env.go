package config

import (
	"os"
	"strings"
)

// Env is a read-once snapshot of process configuration.
type Env struct {
	AppAddr string
	GinMode string

	DBDSN  string
	DBUser string
	DBPass string
	DBHost string
	DBName string

	AdminUsername     string
	AdminPasswordHash string
	AdminPassword     string
	AdminToken        string
	MetadataToken     string
	JWTSecret         string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	env := Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBDSN:  strings.TrimSpace(os.Getenv("DB_DSN")),
		DBUser: getenvDefault("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenvDefault("DB_HOST", "127.0.0.1:3306"),
		DBName: getenvDefault("DB_NAME", "ridebook"),

		AdminUsername:     getenvDefault("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		AdminPassword:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminToken:        strings.TrimSpace(os.Getenv("ADMIN_TOKEN")),
		MetadataToken:     strings.TrimSpace(os.Getenv("METADATA_TOKEN")),
		JWTSecret:         getenvDefault("JWT_SECRET", "super-secret-key-change-me"),
	}

	// metadata surface falls back to the shared admin token
	if env.MetadataToken == "" {
		env.MetadataToken = env.AdminToken
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	}

	return env
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
