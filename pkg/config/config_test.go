package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 70 {
		t.Errorf("Render.Width = %d, want 70", cfg.Render.Width)
	}
	if cfg.Render.NoLabels || cfg.Render.NoDots {
		t.Error("labels and dots should default on")
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "file")
	}
	if cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL.Duration)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":8080")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
width = 40
no_dots = true

[cache]
backend = "redis"
ttl = "1h"

[cache.redis]
addr = "redis.internal:6379"
db = 2

[serve]
addr = ":9090"
read_timeout = "5s"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Render.Width != 40 {
		t.Errorf("Render.Width = %d, want 40", cfg.Render.Width)
	}
	if !cfg.Render.NoDots {
		t.Error("Render.NoDots = false, want true")
	}
	if cfg.Render.NoLabels {
		t.Error("Render.NoLabels = true, want false")
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "redis")
	}
	if cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL.Duration)
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":9090")
	}
	if cfg.Serve.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Serve.ReadTimeout.Duration)
	}
	// Defaults still fill unset fields.
	if cfg.Serve.WriteTimeout.Duration != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want 30s default", cfg.Serve.WriteTimeout.Duration)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[render\nwidth = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoadDefaultFallsBack(t *testing.T) {
	// Point every lookup location at an empty directory.
	dir := t.TempDir()
	t.Setenv("CLADEGRAM_CONFIG", "")
	os.Unsetenv("CLADEGRAM_CONFIG")
	t.Setenv("XDG_CONFIG_HOME", dir)

	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if cfg.Render.Width != 70 {
		t.Errorf("Render.Width = %d, want default 70", cfg.Render.Width)
	}
}

func TestLoadDefaultEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[render]\nwidth = 33\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLADEGRAM_CONFIG", path)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if cfg.Render.Width != 33 {
		t.Errorf("Render.Width = %d, want 33", cfg.Render.Width)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	cfg := Default()
	dir, err := cfg.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/custom-cache", appName) {
		t.Errorf("CacheDir = %q", dir)
	}

	cfg.Cache.Dir = "/explicit/dir"
	dir, err = cfg.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir failed: %v", err)
	}
	if dir != "/explicit/dir" {
		t.Errorf("CacheDir = %q, want explicit override", dir)
	}
}
