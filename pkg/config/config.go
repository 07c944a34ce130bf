// Package config loads typed configuration from the environment. An optional
// .env file is exported into the environment first (via viper), then the
// target struct is filled from envconfig tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// MustNew is New for wiring paths where a bad environment should stop the
// process immediately.
func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

// New fills T from the environment, exporting ./.env first when it exists.
func New[T any](prefix string) (*T, error) {
	if err := exportEnvFileIfExists(".env"); err != nil {
		return nil, fmt.Errorf("load default env file: %w", err)
	}
	return process[T](prefix)
}

// NewFromFile fills T from the environment after exporting the given env
// file. The file must exist.
func NewFromFile[T any](prefix, envFile string) (*T, error) {
	if err := exportEnvFile(envFile); err != nil {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return process[T](prefix)
}

func process[T any](prefix string) (*T, error) {
	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func exportEnvFileIfExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	return exportEnvFile(path)
}

func exportEnvFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	for key, value := range v.AllSettings() {
		if err := os.Setenv(strings.ToUpper(key), fmt.Sprint(value)); err != nil {
			return err
		}
	}
	return nil
}
