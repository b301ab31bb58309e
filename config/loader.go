package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable, for example
// BOSESTAT_CONDENSATE_PARTICLES.
const EnvPrefix = "BOSESTAT"

// DefaultEnvFile is read when no other .env file is named. A missing file is
// not an error.
const DefaultEnvFile = ".env"

// Loader layers the configuration sources.
type Loader struct {
	v          *viper.Viper
	configFile string
	envFile    string
}

// NewLoader creates a Loader that knows every key of Default.
func NewLoader() (*Loader, error) {
	v := viper.New()

	err := setDefaults(v)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}, nil
}

// SetConfigFile names a YAML file to read.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// SetEnvFile names a .env file to read. The file must exist.
func (l *Loader) SetEnvFile(path string) {
	l.envFile = path
}

// BindFlag lets a command-line flag override the key when it is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("config: no flag for key %s", key)
	}

	return l.v.BindPFlag(key, flag)
}

// Keys lists every configuration key.
func (l *Loader) Keys() []string {
	keys := l.v.AllKeys()
	sort.Strings(keys)

	return keys
}

// Load reads all sources and returns the validated configuration.
func (l *Loader) Load() (*Config, error) {
	err := l.loadEnvFile()
	if err != nil {
		return nil, err
	}

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		l.v.SetConfigType("yaml")

		err = l.v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", l.configFile, err)
		}
	}

	var c Config

	err = l.v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (l *Loader) loadEnvFile() error {
	if l.envFile != "" {
		return godotenv.Load(l.envFile)
	}

	err := godotenv.Load(DefaultEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// setDefaults registers every leaf of Default as a viper default so that
// environment variables can override nested keys.
func setDefaults(v *viper.Viper) error {
	raw, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}

	var tree map[string]any

	err = yaml.Unmarshal(raw, &tree)
	if err != nil {
		return err
	}

	walk("", tree, v.SetDefault)

	return nil
}

func walk(prefix string, node map[string]any, visit func(string, any)) {
	for k, val := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if child, ok := val.(map[string]any); ok {
			walk(key, child, visit)
			continue
		}

		visit(key, val)
	}
}
