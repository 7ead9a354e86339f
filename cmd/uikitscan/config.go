package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/uikitscan"
	"github.com/yacobolo/uikitscan/internal/logging"
)

const defaultConfigPath = ".uikitscan.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return errors.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the config file and environment variables.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errors.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// UIKITSCAN_LIBRARY_DIR -> library-dir
	// UIKITSCAN_OUTPUT__FORMAT -> output.format
	if err := k.Load(env.Provider("UIKITSCAN_", ".", envKey), nil); err != nil {
		return errors.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "UIKITSCAN_"))
	parts := strings.Split(s, "__")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", "-")
	}
	return strings.Join(parts, ".")
}

// buildOptions constructs the library Options from koanf state.
func buildOptions() (uikitscan.Options, error) {
	mode, err := uikitscan.ParseMode(getStringOr("mode", ""))
	if err != nil {
		return uikitscan.Options{}, err
	}
	scanEnv, err := uikitscan.ParseEnv(getStringOr("env", ""))
	if err != nil {
		return uikitscan.Options{}, err
	}

	root := getStringOr("root", ".")
	opts := uikitscan.Options{
		Root:        root,
		Mode:        mode,
		Env:         scanEnv,
		Debug:       getBoolOr("debug", false),
		Sources:     getStringsOr("sources", []string{"src"}),
		Exclude:     getStringsOr("exclude", nil),
		LibraryDir:  getStringOr("library-dir", ""),
		IconsRoot:   getStringOr("icons-root", "node_modules"),
		CacheDir:    getStringOr("cache-dir", ""),
		Concurrency: getIntOr("concurrency", 8),
		Logger:      logging.GetLogger("scan"),
	}

	projectConfig := getStringOr("project-config", "")
	if projectConfig == "" {
		projectConfig = uikitscan.FindProjectConfig(root)
	} else if !filepath.IsAbs(projectConfig) {
		projectConfig = filepath.Join(root, projectConfig)
	}
	opts.Project, err = uikitscan.LoadProjectConfig(projectConfig)
	if err != nil {
		return uikitscan.Options{}, err
	}

	opts.Signal = buildSignal(root)
	return opts, nil
}

// buildSignal returns the file signal below the configured signal directory,
// or the process environment when the directory is "-".
func buildSignal(root string) uikitscan.SignalWriter {
	dir := getStringOr("signal-dir", ".uikit")
	if dir == "-" {
		return uikitscan.EnvSignal{}
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return uikitscan.NewFileSignal(dir)
}

func outputFormat() (uikitscan.OutputFormat, error) {
	return uikitscan.DetermineOutputFormat(
		getStringOr("output-format", ""),
		getBoolOr("quiet", false),
	)
}

// getStringOr returns the value of key, or defaultVal when it is unset.
func getStringOr(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStringsOr returns the value of key, or defaultVal when it is unset.
func getStringsOr(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolOr returns the value of key, or defaultVal when it is unset.
func getBoolOr(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntOr returns the value of key, or defaultVal when it is unset.
func getIntOr(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getDurationOr returns the value of key, or defaultVal when it is unset.
func getDurationOr(key string, defaultVal time.Duration) time.Duration {
	if k.Exists(key) {
		return k.Duration(key)
	}
	return defaultVal
}
