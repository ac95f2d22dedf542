package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test default values
	if cfg.Mode != "stdio" {
		t.Errorf("Expected default mode to be 'stdio', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "pnl-metrics" {
		t.Errorf("Expected default server name to be 'pnl-metrics', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	if cfg.Source != "auto" {
		t.Errorf("Expected default source to be 'auto', got '%s'", cfg.Source)
	}

	if cfg.ScanWindow != 10 {
		t.Errorf("Expected default scan window to be 10, got %d", cfg.ScanWindow)
	}

	// Test that report directory is set to current working directory by default
	currentDir, _ := os.Getwd()
	if cfg.ReportDirectory != currentDir {
		t.Errorf("Expected default report directory to be '%s', got '%s'", currentDir, cfg.ReportDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir := t.TempDir()

	valid := func() *Config {
		return &Config{
			Mode:            ModeStdio,
			Host:            DefaultHost,
			Port:            DefaultPort,
			ReportDirectory: tempDir,
			Source:          "auto",
			ScanWindow:      DefaultScanWindow,
			LogLevel:        DefaultLogLevel,
			MaxFileSize:     DefaultMaxFileSize,
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid stdio config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid server config",
			modify: func(c *Config) {
				c.Mode = ModeServer
			},
			wantErr: false,
		},
		{
			name: "invalid mode",
			modify: func(c *Config) {
				c.Mode = "daemon"
			},
			wantErr: true,
		},
		{
			name: "invalid port in server mode",
			modify: func(c *Config) {
				c.Mode = ModeServer
				c.Port = 70000
			},
			wantErr: true,
		},
		{
			name: "port ignored in stdio mode",
			modify: func(c *Config) {
				c.Port = 0
			},
			wantErr: false,
		},
		{
			name: "empty report directory",
			modify: func(c *Config) {
				c.ReportDirectory = ""
			},
			wantErr: true,
		},
		{
			name: "invalid source",
			modify: func(c *Config) {
				c.Source = "ocr"
			},
			wantErr: true,
		},
		{
			name: "zero scan window",
			modify: func(c *Config) {
				c.ScanWindow = 0
			},
			wantErr: true,
		},
		{
			name: "negative max file size",
			modify: func(c *Config) {
				c.MaxFileSize = -1
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.LogLevel = "trace"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfigValidateCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "reports")

	cfg := DefaultConfig()
	cfg.ReportDirectory = missing

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	info, err := os.Stat(missing)
	if err != nil {
		t.Fatalf("expected directory to be created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", missing)
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.IsStdioMode() {
		t.Errorf("default config should be in stdio mode")
	}
	if cfg.IsServerMode() {
		t.Errorf("default config should not be in server mode")
	}
	if cfg.IsDebug() {
		t.Errorf("default config should not be in debug mode")
	}

	cfg.Mode = ModeServer
	cfg.LogLevel = "debug"
	if !cfg.IsServerMode() || cfg.IsStdioMode() {
		t.Errorf("mode helpers out of sync after switching to server mode")
	}
	if !cfg.IsDebug() {
		t.Errorf("debug log level should enable debug mode")
	}

	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("expected address '127.0.0.1:8080', got '%s'", cfg.Address())
	}

	str := cfg.String()
	for _, part := range []string{"Mode: server", "Port: 8080", "Source: auto"} {
		if !strings.Contains(str, part) {
			t.Errorf("expected String() to contain %q, got %s", part, str)
		}
	}
}
