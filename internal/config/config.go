package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// ErrConfig marks an unusable configuration, such as an unresolvable home
// directory or an unreadable config file.
var ErrConfig = errors.New("config error")

const (
	// DataFileName is the default data file, kept in the home directory.
	DataFileName = ".today.jsonl"

	defaultTheme    = "classic"
	defaultLogLevel = "warn"
)

var themes = []string{"classic", "neon", "mono"}

// Config is everything the CLI needs besides its arguments.
type Config struct {
	// File is the JSON Lines data file.
	File string `mapstructure:"file" yaml:"file"`

	// Theme is one of classic, neon or mono.
	Theme string `mapstructure:"theme" yaml:"theme"`

	// Color enables colored output when stdout supports it.
	Color bool `mapstructure:"color" yaml:"color"`

	// LogLevel is a charmbracelet/log level name.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Overrides carry root flag values. Zero values leave the config alone.
type Overrides struct {
	File    string
	Theme   string
	NoColor bool
	Verbose bool
}

// Home resolves the user's home directory.
func Home() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: home directory: %v", ErrConfig, err)
	}
	return home, nil
}

// DefaultPath returns ~/.config/today/config.yaml under home.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "today", "config.yaml")
}

// Load reads the YAML config at path. A missing file yields the defaults
// unless mustExist is set, as it is for a path the user named explicitly.
// A relative data path in the file is taken relative to home.
func Load(path, home string, mustExist bool) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("file", filepath.Join(home, DataFileName))
	v.SetDefault("theme", defaultTheme)
	v.SetDefault("color", true)
	v.SetDefault("log_level", defaultLogLevel)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && (mustExist || !isNotExist(err)) {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrConfig, path, err)
	}
	cfg.File = ExpandPath(cfg.File, home)
	if cfg.File != "" && !filepath.IsAbs(cfg.File) {
		cfg.File = filepath.Join(home, cfg.File)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var pe *fs.PathError
	return errors.As(err, &pe) && errors.Is(pe, fs.ErrNotExist)
}

// Apply layers flag values over the loaded config.
func (c *Config) Apply(o Overrides, home string) error {
	if o.File != "" {
		c.File = ExpandPath(o.File, home)
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.NoColor {
		c.Color = false
	}
	if o.Verbose {
		c.LogLevel = "debug"
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("%w: empty data file path", ErrConfig)
	}
	c.Theme = strings.ToLower(c.Theme)
	valid := false
	for _, t := range themes {
		if c.Theme == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unknown theme %q (want one of %s)", ErrConfig, c.Theme, strings.Join(themes, ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrConfig, err)
	}
	return nil
}

// ExpandPath replaces a leading "~" with home.
func ExpandPath(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
