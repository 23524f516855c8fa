package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"
)

var (
	supportedFormats   = map[string]bool{"jsonl": true, "mermaid": true}
	supportedLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.Scan.Root) == "" {
		cfg.Scan.Root = "."
	}
	if len(cfg.Scan.Include) == 0 {
		cfg.Scan.Include = []string{"**.java"}
	}
	if strings.TrimSpace(cfg.Analysis.Language) == "" {
		cfg.Analysis.Language = "java"
	}
	if cfg.Analysis.Jobs <= 0 {
		cfg.Analysis.Jobs = 4
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = "./output"
	}
	if strings.TrimSpace(cfg.Output.Format) == "" {
		cfg.Output.Format = "jsonl"
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
}

// Validate 命令行覆盖配置后也需要重新校验
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d; supported version is 1", cfg.Version)
	}
	if cfg.Analysis.Language != "java" {
		return fmt.Errorf("analysis.language must be java, got %q", cfg.Analysis.Language)
	}
	if !supportedFormats[strings.ToLower(cfg.Output.Format)] {
		return fmt.Errorf("output.format must be one of: jsonl, mermaid")
	}
	if cfg.Output.Level < 0 || cfg.Output.Level > 2 {
		return fmt.Errorf("output.level must be 0, 1 or 2, got %d", cfg.Output.Level)
	}
	if !supportedLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}
	for _, group := range [][]string{cfg.Scan.Include, cfg.Scan.Exclude} {
		for _, p := range group {
			if _, err := glob.Compile(p, '/'); err != nil {
				return fmt.Errorf("invalid scan pattern %q: %w", p, err)
			}
		}
	}
	for _, p := range cfg.Output.NoisePackages {
		if _, err := glob.Compile(p, '.'); err != nil {
			return fmt.Errorf("invalid noise package pattern %q: %w", p, err)
		}
	}
	return nil
}
