package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gwerrors "github.com/abdigaliarsen/api-gateway/internal/errors"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Host != "" {
		t.Errorf("Host = %q, want empty", cfg.Host)
	}
	if cfg.UpstreamTimeout.Duration != 0 {
		t.Errorf("UpstreamTimeout = %s, want 0", cfg.UpstreamTimeout.Duration)
	}
}

func TestLoad_PortFromEnv(t *testing.T) {
	cfg, err := Load("", envMap(map[string]string{"PORT": "9090"}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	_, err := Load("", envMap(map[string]string{"PORT": "eighty"}))
	if err == nil {
		t.Fatal("Load() should fail for non-numeric PORT")
	}
	if !gwerrors.IsKind(err, gwerrors.KindConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
host = "127.0.0.1"
port = 8081
upstream_timeout = "15s"
log_json = true
verbose = true
`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if cfg.Port != 8081 {
		t.Errorf("Port = %d, want 8081", cfg.Port)
	}
	if cfg.UpstreamTimeout.Duration != 15*time.Second {
		t.Errorf("UpstreamTimeout = %s, want 15s", cfg.UpstreamTimeout.Duration)
	}
	if !cfg.LogJSON || !cfg.Verbose {
		t.Errorf("LogJSON/Verbose not loaded: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "port = 8081\n")

	cfg, err := Load(path, envMap(map[string]string{"PORT": "7070"}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("Port = %d, want 7070 (env beats file)", cfg.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err == nil {
		t.Fatal("Load() should fail for missing file")
	}
	if gwerrors.GetExitCode(err) != gwerrors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", gwerrors.GetExitCode(err), gwerrors.ExitConfigError)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "port = \n")
	if _, err := Load(path, nil); err == nil {
		t.Fatal("Load() should fail for malformed TOML")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `upstream_timeout = "soon"`)
	if _, err := Load(path, nil); err == nil {
		t.Fatal("Load() should fail for unparseable duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", *Default(), false},
		{"zero port", Config{Port: 0}, true},
		{"port too large", Config{Port: 70000}, true},
		{"negative timeout", Config{Port: 80, UpstreamTimeout: Duration{-time.Second}}, true},
		{"timeout set", Config{Port: 80, UpstreamTimeout: Duration{time.Second}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddrAndBaseURL(t *testing.T) {
	tests := []struct {
		host     string
		wantAddr string
		wantURL  string
	}{
		{"", ":3000", "http://localhost:3000"},
		{"0.0.0.0", "0.0.0.0:3000", "http://localhost:3000"},
		{"127.0.0.1", "127.0.0.1:3000", "http://127.0.0.1:3000"},
		{"::1", "[::1]:3000", "http://[::1]:3000"},
	}

	for _, tt := range tests {
		cfg := &Config{Host: tt.host, Port: 3000}
		if got := cfg.Addr(); got != tt.wantAddr {
			t.Errorf("Addr(%q) = %q, want %q", tt.host, got, tt.wantAddr)
		}
		if got := cfg.BaseURL(); got != tt.wantURL {
			t.Errorf("BaseURL(%q) = %q, want %q", tt.host, got, tt.wantURL)
		}
	}
}
