package main

import (
	"bytes"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"io"
	"io/fs"
	"os"
	"strings"
)

const defaultConfigPath = "lcdctl.yaml"

type Config struct {
	// Bus is the periph name of the I2C bus, e.g. "/dev/i2c-1" or "1". Empty means the first bus found.
	Bus string `yaml:"bus"`
	// Celsius marks sensor temperatures as given in Celsius.
	Celsius bool `yaml:"celsius"`
}

func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No configuration at %s, using defaults", path)
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}

	c, err := parseConfig(content)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return c, nil
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	c.Bus = strings.TrimSpace(c.Bus)
	if strings.ContainsAny(c.Bus, " \t\n") {
		return nil, fmt.Errorf("bus name %q must not contain whitespace", c.Bus)
	}

	return c, nil
}
