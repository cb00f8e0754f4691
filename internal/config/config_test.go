package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("expected sqlite backend, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Path != filepath.Join(dir, "housekeeping.db") {
		t.Errorf("unexpected store path %q", cfg.Store.Path)
	}
	if cfg.Store.Key != "rooms" {
		t.Errorf("expected key 'rooms', got %q", cfg.Store.Key)
	}
	if !cfg.Board.Seed {
		t.Error("expected seeding on by default")
	}
	if len(cfg.Board.Staff) != 5 {
		t.Errorf("expected default roster of 5, got %v", cfg.Board.Staff)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
store:
  backend: redis
  key: east-wing
redis:
  addr: 127.0.0.1:6380
board:
  seed: false
  staff: [Ana, Ben]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Store.Backend != BackendRedis || cfg.Store.Key != "east-wing" {
		t.Errorf("store not overridden: %+v", cfg.Store)
	}
	if cfg.Redis.Addr != "127.0.0.1:6380" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
	if cfg.Board.Seed {
		t.Error("expected seed false from file")
	}
	if len(cfg.Board.Staff) != 2 || cfg.Board.Staff[0] != "Ana" {
		t.Errorf("staff = %v", cfg.Board.Staff)
	}
	// untouched sections keep defaults
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want default info", cfg.Log.Level)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOUSEKEEPING_STORE_KEY", "west-wing")
	t.Setenv("HOUSEKEEPING_REDIS_DB", "3")
	t.Setenv("HOUSEKEEPING_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Store.Key != "west-wing" {
		t.Errorf("key = %q", cfg.Store.Key)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("redis db = %d", cfg.Redis.DB)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"backend is case-insensitive", func(c *Config) { c.Store.Backend = " SQLite " }, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "etcd" }, true},
		{"sqlite needs a path", func(c *Config) { c.Store.Path = "" }, true},
		{"redis needs an addr", func(c *Config) { c.Store.Backend = "redis"; c.Redis.Addr = "" }, true},
		{"key required", func(c *Config) { c.Store.Key = " " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(t.TempDir())
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := Default(dir)
	cfg.Store.Key = "annex"
	cfg.Board.Staff = []string{"Rosa"}
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Store.Key != "annex" {
		t.Errorf("key = %q", loaded.Store.Key)
	}
	if len(loaded.Board.Staff) != 1 || loaded.Board.Staff[0] != "Rosa" {
		t.Errorf("staff = %v", loaded.Board.Staff)
	}
}
