package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("default server URL wrong: %q", cfg.ServerURL)
	}
	if !cfg.UseRAG {
		t.Error("RAG should default to enabled")
	}
}

func TestLoadOverride(t *testing.T) {
	t.Setenv("SKILLSCOPE_SERVER_URL", "https://gap.example.com")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "https://gap.example.com" {
		t.Errorf("override not applied: %q", cfg.ServerURL)
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	cases := []string{"", "   ", "localhost:8000", "ftp://x"}
	for _, u := range cases {
		cfg := Config{ServerURL: u}
		if err := cfg.Validate(); err == nil {
			t.Errorf("URL %q should be rejected", u)
		}
	}
}
