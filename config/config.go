/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Subhasish-Behera/enclave-inclusion/corelog"
)

const DefaultConfigFile = "inclusion-tree.yaml"

// Config describes how the tree is built and where its output goes.
type Config struct {
	// Input is the CSV file with one identifier per row.
	Input string `yaml:"input"`
	// Sorted sorts the identifiers before building, which enables
	// binary search lookups.
	Sorted bool `yaml:"sorted"`
	// HasHeader reports whether the first CSV row is a header.
	HasHeader bool `yaml:"has_header"`
	// Workers bounds build parallelism. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// MetricsFile, when set, receives a prometheus textfile dump on exit.
	MetricsFile string `yaml:"metrics_file"`

	LogLevel string         `yaml:"log_level"`
	Log      corelog.Config `yaml:"log"`
}

func Default() Config {
	return Config{
		HasHeader: true,
		LogLevel:  corelog.DefaultLevel.String(),
		Log:       corelog.Config{}.Default(),
	}
}

// Load reads a YAML configuration on top of Default.
func Load(path string) (Config, error) {
	rawFile, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "Unable to read configuration")
	}

	cfg := Default()
	if err = yaml.Unmarshal(rawFile, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "Unable to decode configuration")
	}

	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if _, err := corelog.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Log.FileLoggingEnabled && cfg.Log.Filename == "" {
		return errors.New("log.filename is required when file logging is enabled")
	}
	return nil
}
