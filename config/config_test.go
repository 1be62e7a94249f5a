package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

// chdirTemp runs the test from an empty directory so no config.yaml or .env is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/items")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %s", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.Database.AcquireTimeout != 5*time.Second {
		t.Errorf("expected 5s acquire timeout, got %s", cfg.Database.AcquireTimeout)
	}
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/items" {
		t.Errorf("unexpected dsn %q", cfg.Database.DSN)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_DSN", "postgres://from-dsn")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("HTTP_SERVER_ROUTE_PREFIX", "/api/v1/")
	t.Setenv("HTTP_SERVER_CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.DSN != "postgres://from-dsn" {
		t.Errorf("unexpected dsn %q", cfg.Database.DSN)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.RoutePrefix != "/api/v1" {
		t.Errorf("expected trimmed prefix, got %q", cfg.HTTPServer.RoutePrefix)
	}
	want := []string{"http://a.example", "http://b.example"}
	if !reflect.DeepEqual(cfg.HTTPServer.CORSAllowedOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.HTTPServer.CORSAllowedOrigins)
	}
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_DSN", "postgres://from-dsn")
	t.Setenv("DATABASE_URL", "postgres://from-url")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.DSN != "postgres://from-url" {
		t.Errorf("expected DATABASE_URL to win, got %q", cfg.Database.DSN)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	chdirTemp(t)
	if err := os.WriteFile(".env", []byte("DATABASE_URL=postgres://from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv does not override variables already set; make sure it is unset
	// and restored afterwards.
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.DSN != "postgres://from-dotenv" {
		t.Errorf("expected dsn from .env, got %q", cfg.Database.DSN)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	yaml := `
http_server:
  port: 7070
  cors_allowed_origins:
    - http://a.example
database:
  dsn: postgres://from-file
  acquire_timeout: 250ms
`
	if err := os.WriteFile("config.yaml", []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config.yaml: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 7070 || cfg.Database.DSN != "postgres://from-file" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Database.AcquireTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.Database.AcquireTimeout)
	}
	if !reflect.DeepEqual(cfg.HTTPServer.CORSAllowedOrigins, []string{"http://a.example"}) {
		t.Errorf("unexpected origins %v", cfg.HTTPServer.CORSAllowedOrigins)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("DATABASE_DSN", "")
	os.Unsetenv("DATABASE_DSN")

	if _, err := Load(); err == nil {
		t.Error("expected an error without a dsn")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"a, b", "", "c"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected %v", got)
	}
}

func TestLoad_HTTPServerMode(t *testing.T) {
	for _, tc := range []struct {
		mode    string
		wantErr bool
	}{
		{"debug", false},
		{"release", false},
		{"test", false},
		{"production", true},
		{"Release", true},
	} {
		t.Run(tc.mode, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/items")
			t.Setenv("HTTP_SERVER_MODE", tc.mode)

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected an error for mode %q", tc.mode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.HTTPServer.Mode != tc.mode {
				t.Errorf("expected mode %q, got %q", tc.mode, cfg.HTTPServer.Mode)
			}
		})
	}
}
