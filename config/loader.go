package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is shared by every environment variable the CLI reads.
const envPrefix = "CIRCLE_"

// FileSystem abstracts file access so the resolver can be tested without
// touching the real filesystem.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserHomeDir() (string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Resolver finds the config and .env files the loader should read.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths when provided, otherwise searches
// the working directory and then ~/.circle.
func (r *Resolver) ResolveFiles(opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}

	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.findConfigFile()
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.findEnvFile()
	}

	return resolved
}

// findConfigFile searches for a config file in standard locations.
func (r *Resolver) findConfigFile() string {
	searchPaths := []string{
		"./circle.yml",
		"./circle.yaml",
	}
	if home, err := r.FileSystem.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths,
			filepath.Join(home, ".circle", "config.yml"),
			filepath.Join(home, ".circle", "config.yaml"),
		)
	}

	for _, path := range searchPaths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches for a .env file in standard locations.
func (r *Resolver) findEnvFile() string {
	searchPaths := []string{".env"}
	if home, err := r.FileSystem.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".circle", ".env"))
	}

	for _, path := range searchPaths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads settings from the resolved config file, an optional .env file
// and CIRCLE_* environment variables, then applies defaults. Precedence is
// environment over .env over config file. Missing files are not an error.
func Load(opts ...LoaderOption) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(lc)

	return loadFromResolvedFiles(files, lc.FileSystem)
}

// loadFromResolvedFiles loads settings from specific files.
func loadFromResolvedFiles(files ResolvedFiles, fs FileSystem) (*Settings, error) {
	v := viper.New()

	// 1. Config file is the base layer.
	if files.ConfigFile != "" && fs.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", files.ConfigFile, err)
		}
	}

	// 2. A .env file fills in variables not already set in the
	// environment, so the real environment still wins.
	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", files.EnvFile, err)
		}
	}

	// 3. Overlay CIRCLE_* environment variables on top of the file.
	bindEnvVars(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	s.ApplyDefaults()
	return &s, nil
}

// bindEnvVars overlays CIRCLE_* environment variables onto viper keys:
// CIRCLE_API_KEY becomes api_key, CIRCLE_BASE_URL becomes base_url, and
// so on. Set outranks file values in viper, which gives the environment
// precedence over the config file. Empty variables are treated as unset.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || pair[1] == "" || !strings.HasPrefix(pair[0], envPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], envPrefix))
		v.Set(key, pair[1])
	}
}
