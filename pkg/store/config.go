package store

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the dashboard database lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .ritmo config file (current directory or an
// override via RITMO_CONFIG_PATH) and falls back to ~/.ritmo.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.ritmo.db")
	viper.SetConfigName(".ritmo") // .yaml is implicit
	viper.SetEnvPrefix("RITMO")
	viper.AutomaticEnv()

	if override := os.Getenv("RITMO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path := viper.GetString("path")
	if strings.HasPrefix(path, "~") {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("store: expand %s: %w", path, err)
		}
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

// PathConfig points Persistence at an explicit directory. Used by tests
// and by tools that manage their own storage location.
func PathConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
