// Package config loads the trainer's configuration: an optional
// config.yaml overridden by TRAINER_-prefixed environment variables, with
// provider credentials defaulting from their conventional variable names.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	Gemini GeminiConfig `koanf:"gemini"`
	OpenAI OpenAIConfig `koanf:"openai"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

// GeminiConfig holds the Gemini credential. An empty key makes the
// provider unavailable; the orchestrator then skips it.
type GeminiConfig struct {
	APIKey string `koanf:"api_key"`
}

// OpenAIConfig holds the OpenAI credential.
type OpenAIConfig struct {
	APIKey string `koanf:"api_key"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Optional config file; env vars override it.
	if err := k.Load(file.Provider("config.yaml"), yaml.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// TRAINER_SERVER__PORT=8000 -> server.port
	if err := k.Load(env.Provider("TRAINER_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "TRAINER_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	if !k.Exists("server.port") {
		k.Set("server.port", 8000)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	// Conventional credential variables win only when nothing more
	// specific was configured.
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return &cfg, nil
}
