package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	Env                  string
	StaticDir            string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	// SessionSecret signs session tokens, AppPassword is the single shared
	// credential. Both must be set explicitly; there is no built-in default.
	SessionSecret string
	AppPassword   string
}

func (c Config) Production() bool { return c.Env == "production" }

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		Env:                  getenv("ENV", "development"),
		StaticDir:            getenv("STATIC_DIR", ""),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.SessionSecret = mustGetenv("SESSION_SECRET")
	cfg.AppPassword = mustGetenv("APP_PASSWORD")
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
