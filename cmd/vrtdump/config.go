package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type logConfig struct {
	Directory  string `yaml:"directory"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	MaxBackups int    `yaml:"maxBackups"`
	Compress   bool   `yaml:"compress"`
}

type reportConfig struct {
	Directory string `yaml:"directory"`
	JSON      bool   `yaml:"json"`
}

type config struct {
	// Progress enables the in-place scan progress line.
	Progress bool         `yaml:"progress"`
	Logs     logConfig    `yaml:"logs"`
	Report   reportConfig `yaml:"report"`
}

func defaultConfig() config {
	return config{
		Report: reportConfig{Directory: "."},
		Logs: logConfig{
			MaxSizeMB:  25,
			MaxAgeDays: 7,
			MaxBackups: 5,
		},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Report.Directory == "" {
		cfg.Report.Directory = "."
	}
	if cfg.Logs.MaxSizeMB <= 0 {
		cfg.Logs.MaxSizeMB = 25
	}
	if cfg.Logs.MaxAgeDays <= 0 {
		cfg.Logs.MaxAgeDays = 7
	}
	if cfg.Logs.MaxBackups <= 0 {
		cfg.Logs.MaxBackups = 5
	}
	if cfg.Logs.Directory != "" && !filepath.IsAbs(cfg.Logs.Directory) {
		base := filepath.Dir(path)
		cfg.Logs.Directory = filepath.Clean(filepath.Join(base, cfg.Logs.Directory))
	}
	return cfg, nil
}
