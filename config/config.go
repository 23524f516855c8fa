package config

import (
	"github.com/CodMac/jsema/core"
)

type Config struct {
	Version  int      `toml:"version"`
	Scan     Scan     `toml:"scan"`
	Analysis Analysis `toml:"analysis"`
	Output   Output   `toml:"output"`
	Log      Log      `toml:"log"`
}

type Scan struct {
	Root    string   `toml:"root"`
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type Analysis struct {
	Language  string `toml:"language"`
	Jobs      int    `toml:"jobs"`
	Strict    bool   `toml:"strict"`
	KeepGoing bool   `toml:"keep_going"`
	// JDK 为 false 时不加载内置 JDK 签名表，所有非源码类型都视为无法解析
	JDK *bool `toml:"jdk"`
}

type Output struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
	// Level 0(Raw), 1(Balanced), 2(Pure)
	Level int `toml:"level"`
	// NoisePackages 平衡模式下视为噪音的外部包 glob
	NoisePackages []string `toml:"noise_packages"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default 未提供配置文件时使用
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func (c *Config) JDKEnabled() bool {
	return c.Analysis.JDK == nil || *c.Analysis.JDK
}

func (c *Config) Options() core.Options {
	return core.Options{Strict: c.Analysis.Strict, KeepGoing: c.Analysis.KeepGoing}
}

func (c *Config) FilterLevel() core.FilterLevel {
	return core.FilterLevel(c.Output.Level)
}
