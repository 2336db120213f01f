package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.TokenTTL != 8*time.Hour {
		t.Errorf("TokenTTL = %v, want 8h", cfg.TokenTTL)
	}
	if cfg.CategoryCacheTTL != time.Hour {
		t.Errorf("CategoryCacheTTL = %v, want 1h", cfg.CategoryCacheTTL)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("CATEGORY_CACHE_TTL", "5m")
	t.Setenv("DB_NAME", "blogtest")

	cfg := Load()
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.CategoryCacheTTL != 5*time.Minute {
		t.Errorf("CategoryCacheTTL = %v", cfg.CategoryCacheTTL)
	}
	if cfg.DBName != "blogtest" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "app", DBPassword: "pw", DBHost: "db", DBPort: "5432",
		DBName: "blog", DBSSLMode: "disable",
	}
	want := "postgres://app:pw@db:5432/blog?sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestCSVHelpers(t *testing.T) {
	cfg := &Config{
		CORSAllowedOrigins: "https://a.example.com, https://b.example.com ,",
		ElasticsearchAddrs: "http://es1:9200",
	}
	origins := cfg.CORSOrigins()
	if len(origins) != 2 || origins[1] != "https://b.example.com" {
		t.Errorf("origins = %v", origins)
	}
	if addrs := cfg.ESAddrs(); len(addrs) != 1 || addrs[0] != "http://es1:9200" {
		t.Errorf("addrs = %v", addrs)
	}
}

func TestMustJWTKeyDevelopmentFallback(t *testing.T) {
	cfg := &Config{Env: "development"}
	if key := cfg.MustJWTKey(); key == "" {
		t.Fatal("expected a development fallback key")
	}
	cfg = &Config{Env: "production", JWTKey: "prod-key"}
	if key := cfg.MustJWTKey(); key != "prod-key" {
		t.Fatalf("key = %q", key)
	}
}
