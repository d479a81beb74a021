package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

type Config struct {
	LogLevel string        `yaml:"log_level"`
	Camera   CameraConfig  `yaml:"camera"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

type CameraConfig struct {
	// Address is the camera base URL, without the streaming port.
	Address string `yaml:"address"`
	// CORS switches the streaming port from :8080 to a /8080 path
	// segment, for use behind a CORS-rewriting proxy.
	CORS bool `yaml:"cors"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

type MetricsConfig struct {
	// ListenAddress serves prometheus metrics during long-running
	// commands when set.
	ListenAddress string `yaml:"listen_address"`
}

var DefaultConfig = &Config{
	LogLevel: "info",
	Camera: CameraConfig{
		Address: "http://10.5.5.9",
		Timeout: 10,
	},
}

// Load builds the effective configuration: CLI flags take precedence
// over the config file, which takes precedence over defaults.
func Load(c *cli.Context) (*Config, error) {
	conf := &Config{}

	if path := c.GlobalString("config"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, conf); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if c.GlobalIsSet("address") {
		conf.Camera.Address = c.GlobalString("address")
	}
	if c.GlobalIsSet("cors") {
		conf.Camera.CORS = c.GlobalBool("cors")
	}
	if c.GlobalIsSet("log-level") {
		conf.LogLevel = c.GlobalString("log-level")
	}
	if c.GlobalIsSet("listen") {
		conf.Metrics.ListenAddress = c.GlobalString("listen")
	}

	if err := mergo.Merge(conf, DefaultConfig); err != nil {
		return nil, err
	}
	return conf, nil
}
