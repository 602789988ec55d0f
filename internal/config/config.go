package config

import (
	"fmt"
	"os"
)

type AppConfig struct {
	Port               string
	DatabaseURL        string
	SupabaseURL        string
	SupabaseServiceKey string
	ZhipuAPIKey        string
	ZhipuBaseURL       string
	CORSAllowedOrigin  string
}

func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:               getEnv("PORT", "8000"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		ZhipuAPIKey:        os.Getenv("ZHIPU_API_KEY"),
		ZhipuBaseURL:       getEnv("ZHIPU_BASE_URL", "https://open.bigmodel.cn/api/paas/v4"),
		CORSAllowedOrigin:  getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	for name, value := range map[string]string{
		"DATABASE_URL":         cfg.DatabaseURL,
		"SUPABASE_URL":         cfg.SupabaseURL,
		"SUPABASE_SERVICE_KEY": cfg.SupabaseServiceKey,
		"ZHIPU_API_KEY":        cfg.ZhipuAPIKey,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
