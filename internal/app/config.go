// Package app ties configuration and the list file together for the
// tq commands.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/grenewode/todo-queue/internal/script"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	ListFile     string `json:"list_file"`
	HistoryFile  string `json:"history_file,omitempty"`
	DefaultQuery string `json:"default_query,omitempty"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd   string `json:"-"`
	ListFileAbs    string `json:"-"`
	HistoryFileAbs string `json:"-"` // empty when history cannot be located

	Sources ConfigSources `json:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ListFile:     ".todo.json",
		HistoryFile:  "~/.tq_history",
		DefaultQuery: "all",
	}
}

// ConfigFileName is the project config file name.
const ConfigFileName = ".tq.json"

// globalConfigPath returns $XDG_CONFIG_HOME/tq/config.json, falling back
// to ~/.config/tq/config.json. Empty when neither variable is set.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "tq", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "tq", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride  string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath       string            // -c/--config flag value
	ListFileOverride string            // --list flag value; empty means no override
	Env              map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/tq/config.json or $XDG_CONFIG_HOME/tq/config.json)
// 3. Project config file (.tq.json, if it exists)
// 4. Explicit config file via ConfigPath (replaces the project file)
// 5. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	if input.ListFileOverride != "" {
		cfg.ListFile = input.ListFileOverride
	}

	err = validateConfig(cfg)
	if err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir
	cfg.ListFileAbs = resolvePath(workDir, cfg.ListFile, input.Env)
	cfg.HistoryFileAbs = resolvePath(workDir, cfg.HistoryFile, input.Env)

	return cfg, nil
}

// resolvePath makes path absolute against workDir, expanding a leading
// "~/" from HOME. Returns empty if path needs HOME and it is unset.
func resolvePath(workDir, path string, env map[string]string) string {
	if path == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home := env["HOME"]
		if home == "" {
			return ""
		}

		return filepath.Join(home, rest)
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

func loadGlobalConfig(env map[string]string) (Config, string, error) {
	path := globalConfigPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, explicitEmpty, loaded, err := loadConfigFile(path, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	if explicitEmpty["list_file"] {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrListFileEmpty)
	}

	return cfg, path, nil
}

// loadProjectConfig loads .tq.json from workDir, or configPath when set.
// An explicit config file must exist.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	cfgFile := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	cfg, explicitEmpty, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	if explicitEmpty["list_file"] {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, cfgFile, ErrListFileEmpty)
	}

	return cfg, cfgFile, nil
}

// loadConfigFile reads and parses path. A missing optional file is not
// an error and reports loaded=false.
func loadConfigFile(path string, mustExist bool) (Config, map[string]bool, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, nil, false, nil
		}

		return Config{}, nil, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, explicitEmpty, err := parseConfig(data)
	if err != nil {
		return Config{}, nil, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, explicitEmpty, true, nil
}

func parseConfig(data []byte) (Config, map[string]bool, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSON: %w", err)
	}

	// Fields explicitly set to "" are reported separately: an empty
	// list_file is an error, not a request for the default.
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	explicitEmpty := make(map[string]bool)

	for key, val := range raw {
		if str, ok := val.(string); ok && str == "" {
			explicitEmpty[key] = true
		}
	}

	return cfg, explicitEmpty, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.ListFile != "" {
		base.ListFile = overlay.ListFile
	}

	if overlay.HistoryFile != "" {
		base.HistoryFile = overlay.HistoryFile
	}

	if overlay.DefaultQuery != "" {
		base.DefaultQuery = overlay.DefaultQuery
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.ListFile == "" {
		return ErrListFileEmpty
	}

	_, err := script.ParseQuery(cfg.DefaultQuery)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrDefaultQuery, cfg.DefaultQuery, err)
	}

	return nil
}
