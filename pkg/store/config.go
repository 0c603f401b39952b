package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the settings the store and its callers need.
type Config interface {
	BasePath() string
	Locale() string
	LogLevel() string
	LogFile() string
}

// LoadConfig reads .shoplist.yaml (if any) and SHOPLIST_* environment
// variables. A missing config file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.shoplist.db")
	v.SetDefault("locale", "pt")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetConfigName(".shoplist") // .yaml is implicit
	v.SetEnvPrefix("SHOPLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("SHOPLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString("log.file"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	return &fileConfig{
		Path:    path,
		Lang:    v.GetString("locale"),
		Level:   v.GetString("log.level"),
		LogPath: logFile,
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Lang    string `json:"locale"`
	Level   string `json:"logLevel"`
	LogPath string `json:"logFile"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Locale() string   { return f.Lang }
func (f *fileConfig) LogLevel() string { return f.Level }
func (f *fileConfig) LogFile() string  { return f.LogPath }

// StaticConfig is a Config with fixed values, used by tests and callers that
// already know where the data lives.
type StaticConfig struct {
	Path  string
	Lang  string
	Level string
	File  string
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Locale() string {
	if s.Lang == "" {
		return "pt"
	}
	return s.Lang
}

func (s StaticConfig) LogLevel() string { return s.Level }
func (s StaticConfig) LogFile() string  { return s.File }
