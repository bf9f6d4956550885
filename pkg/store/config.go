package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings the store and client need.
type Config interface {
	APIBase() string
	Token() string
	CachePath() string
}

// LoadConfig reads .fieldops.yaml from the working directory (or the
// directory named by FIELDOPS_CONFIG_PATH) and merges FIELDOPS_* env
// overrides on top of the defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("api", "http://localhost:8000")
	viper.SetDefault("cache", "~/.fieldops.db")
	viper.SetConfigName(".fieldops") // .yaml is implicit
	viper.SetEnvPrefix("FIELDOPS")
	viper.AutomaticEnv()

	if override := os.Getenv("FIELDOPS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cache, err := homedir.Expand(viper.GetString("cache"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		API:   viper.GetString("api"),
		Auth:  viper.GetString("token"),
		Cache: cache,
	}, nil
}

type fileConfig struct {
	API   string `json:"api"`
	Auth  string `json:"token"`
	Cache string `json:"cache"`
}

func (f *fileConfig) APIBase() string   { return f.API }
func (f *fileConfig) Token() string     { return f.Auth }
func (f *fileConfig) CachePath() string { return f.Cache }
