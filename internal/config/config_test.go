package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestGetReturnsViperValues(t *testing.T) {
	customSpace := "Work"
	customEndpoint := "http://custom-anytype:9090"
	customTimeout := 60 * time.Second

	t.Run("timeout from time.Duration", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		viper.Set("default_space", customSpace)
		viper.Set("api_endpoint", customEndpoint)
		viper.Set("case_insensitive", false)
		viper.Set("verbose", true)
		viper.Set("request_timeout", customTimeout)

		cfg, err := Get()
		if err != nil {
			t.Fatalf("expected no error from Get(), got %v", err)
		}
		if cfg == nil {
			t.Fatal("expected non-nil config")
		}
		if cfg.DefaultSpace != customSpace {
			t.Errorf("DefaultSpace = %q, want %q", cfg.DefaultSpace, customSpace)
		}
		if cfg.APIEndpoint != customEndpoint {
			t.Errorf("APIEndpoint = %q, want %q", cfg.APIEndpoint, customEndpoint)
		}
		if cfg.CaseInsensitive {
			t.Error("CaseInsensitive = true, want false")
		}
		if !cfg.Verbose {
			t.Error("Verbose = false, want true")
		}
		if cfg.RequestTimeout != customTimeout {
			t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, customTimeout)
		}
	})

	t.Run("timeout from string", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		viper.Set("request_timeout", "60s")

		cfg, err := Get()
		if err != nil {
			t.Fatalf("expected no error from Get() with string timeout, got %v", err)
		}
		if cfg.RequestTimeout != customTimeout {
			t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, customTimeout)
		}
	})
}

func TestGetReturnsZeroValuesWhenViperEmpty(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Get()
	if err != nil {
		t.Fatalf("expected no error from Get(), got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.DefaultSpace != "" {
		t.Errorf("DefaultSpace = %q, want empty", cfg.DefaultSpace)
	}
	if cfg.APIEndpoint != "" {
		t.Errorf("APIEndpoint = %q, want empty", cfg.APIEndpoint)
	}
	if cfg.CaseInsensitive {
		t.Error("CaseInsensitive = true, want false")
	}
	if cfg.RequestTimeout != 0 {
		t.Errorf("RequestTimeout = %v, want 0", cfg.RequestTimeout)
	}
}

func TestWithDefaultsBackfillsZeroFields(t *testing.T) {
	cfg := &Config{DefaultSpace: "Work"}

	merged, err := WithDefaults(cfg)
	if err != nil {
		t.Fatalf("expected no error from WithDefaults(), got %v", err)
	}
	if merged.DefaultSpace != "Work" {
		t.Errorf("DefaultSpace = %q, want %q (override must win)", merged.DefaultSpace, "Work")
	}
	if merged.APIEndpoint != "http://localhost:31009" {
		t.Errorf("APIEndpoint = %q, want the default", merged.APIEndpoint)
	}
	if merged.CacheTTL != 300*time.Second {
		t.Errorf("CacheTTL = %v, want the default", merged.CacheTTL)
	}
	if !merged.CaseInsensitive {
		t.Error("CaseInsensitive = false, want the default true")
	}
}
