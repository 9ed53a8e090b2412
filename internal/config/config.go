// Package config loads emucfg settings from YAML or INI files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"emucfg/internal/common"
	"emucfg/internal/controller"
)

// Config holds the settings of an emucfg run.
type Config struct {
	// OutDir receives preset files, tree backups and reports.
	OutDir string `yaml:"out_dir"`
	Debug  bool   `yaml:"debug"`
	// Jobs bounds how many input files are processed at once.
	Jobs                     int      `yaml:"jobs"`
	SupportedControllerTypes []string `yaml:"supported_controller_types"`
}

const (
	iniSection = "emucfg"

	envOutDir = "EMUCFG_OUT_DIR"
	envDebug  = "EMUCFG_DEBUG"
	envJobs   = "EMUCFG_JOBS"
)

// Default returns a Config with every default applied.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)

	return &cfg
}

// LoadFile reads a .yaml, .yml or .ini settings file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Parse(data)
	case ".ini":
		return ParseINI(data)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ParseINI parses the [emucfg] section of an INI document.
func ParseINI(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config INI: %w", err)
	}

	sec := f.Section(iniSection)

	cfg := Config{
		OutDir: sec.Key("out_dir").String(),
		Debug:  sec.Key("debug").MustBool(false),
		Jobs:   sec.Key("jobs").MustInt(0),
	}

	if types := sec.Key("supported_controller_types").String(); types != "" {
		cfg.SupportedControllerTypes = common.SplitList(types, ",")
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.OutDir == "" {
		cfg.OutDir = "out"
	}

	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.NumCPU()
	}

	if len(cfg.SupportedControllerTypes) == 0 {
		cfg.SupportedControllerTypes = slices.Clone(controller.DefaultSupportedTypes)
	}
}

// ApplyEnv overrides cfg from EMUCFG_* variables. Values come from the
// process environment first, then from envFiles, or from ./.env when no
// files are given. A missing ./.env is not an error.
func ApplyEnv(cfg *Config, envFiles ...string) error {
	fileEnv := map[string]string{}

	if len(envFiles) > 0 {
		m, err := godotenv.Read(envFiles...)
		if err != nil {
			return fmt.Errorf("failed to read env files: %w", err)
		}

		fileEnv = m
	} else if m, err := godotenv.Read(); err == nil {
		fileEnv = m
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v), true
		}

		v, ok := fileEnv[key]

		return strings.TrimSpace(v), ok
	}

	if v, ok := lookup(envOutDir); ok && v != "" {
		cfg.OutDir = v
	}

	if v, ok := lookup(envDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envDebug, v, err)
		}

		cfg.Debug = debug
	}

	if v, ok := lookup(envJobs); ok && v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil || jobs <= 0 {
			return fmt.Errorf("invalid %s %q", envJobs, v)
		}

		cfg.Jobs = jobs
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
