package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileEnv names the environment variable holding an optional YAML config path.
const FileEnv = "CONFIG_FILE"

// envKeys maps the environment variables read by the service to koanf keys.
// Anything else in the environment is ignored.
var envKeys = map[string]string{
	"HOST_NAME":        "host_name",
	"PORT":             "port",
	"PROXY_PORT":       "proxy_port",
	"LOG_LEVEL":        "log_level",
	"SHUTDOWN_TIMEOUT": "shutdown_timeout",
}

// Load builds a validated Config. A missing HOST_NAME yields
// ErrMissingHostName; source failures wrap ErrLoadConfig.
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %w", ErrLoadConfig, err)
	}
	for name, value := range dotenv {
		if key := envKeys[name]; key != "" {
			if err := k.Set(key, value); err != nil {
				return nil, fmt.Errorf("%w: .env: %w", ErrLoadConfig, err)
			}
		}
	}

	path, ok := os.LookupEnv(FileEnv)
	if !ok {
		path = dotenv[FileEnv]
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		return envKeys[s]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
