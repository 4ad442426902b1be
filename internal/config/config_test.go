package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Gemini.APIKey != "" || cfg.OpenAI.APIKey != "" {
		t.Errorf("expected no credentials, got gemini=%q openai=%q", cfg.Gemini.APIKey, cfg.OpenAI.APIKey)
	}
}

func TestLoadFromEnvPrefix(t *testing.T) {
	t.Setenv("TRAINER_SERVER__PORT", "9090")
	t.Setenv("TRAINER_OPENAI__API_KEY", "sk-prefixed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.OpenAI.APIKey != "sk-prefixed" {
		t.Errorf("OpenAI.APIKey = %q, want value from prefixed var", cfg.OpenAI.APIKey)
	}
}

func TestLoadConventionalCredentialVars(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("Gemini.APIKey = %q, want g-key", cfg.Gemini.APIKey)
	}
	if cfg.OpenAI.APIKey != "o-key" {
		t.Errorf("OpenAI.APIKey = %q, want o-key", cfg.OpenAI.APIKey)
	}
}

func TestPrefixedCredentialWinsOverConventional(t *testing.T) {
	t.Setenv("TRAINER_GEMINI__API_KEY", "specific")
	t.Setenv("GEMINI_API_KEY", "conventional")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.APIKey != "specific" {
		t.Errorf("Gemini.APIKey = %q, want prefixed value to win", cfg.Gemini.APIKey)
	}
}
