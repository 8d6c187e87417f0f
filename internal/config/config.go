// Package config loads and validates the inventory source file.
//
// The file is the same YAML document the Ansible gns3 inventory plugin reads,
// so an existing gns3.yml works unchanged. Keys this package does not know
// (compose, groups, cache options...) are ignored.
//
// Config file locations (priority order):
//  1. $GNS3_INVENTORY_CONFIG
//  2. ./gns3.yml, ./gns3.yaml
//  3. ~/.config/gns3-inventory/gns3.yml
//  4. /etc/gns3-inventory/gns3.yml
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	defaultGroup   = "gns3"
	defaultTimeout = 30 * time.Second
)

// ErrNoConfig is returned by Load when no inventory source file can be found
var ErrNoConfig = errors.New("no gns3 inventory config found")

// Load finds and loads the config file
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return nil, "", ErrNoConfig
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	if !VerifyFile(path) {
		return nil, path, fmt.Errorf("inventory source %s does not end in gns3.yml or gns3.yaml", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Parse decodes, completes and validates a config document. Environment
// overrides are applied between decoding and validation.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("environment override: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns the values used for keys absent from the file
func DefaultConfig() *Config {
	return &Config{
		ValidateCerts:   true,
		Group:           defaultGroup,
		HostNaming:      HostNamingName,
		GroupByNodeType: true,
		Timeout:         Duration(defaultTimeout),
	}
}

// applyDefaults fills in values an explicit empty key would otherwise clear
func (c *Config) applyDefaults() {
	c.URL = strings.TrimRight(strings.TrimSpace(c.URL), "/")
	c.ProjectID = strings.TrimSpace(c.ProjectID)

	if c.Group == "" {
		c.Group = defaultGroup
	}
	if c.HostNaming == "" {
		c.HostNaming = HostNamingName
	}
	if c.Timeout <= 0 {
		c.Timeout = Duration(defaultTimeout)
	}
}

// applyEnvOverrides lets GNS3_* variables replace file values
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("GNS3_URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv("GNS3_PROJECT_NAME"); v != "" {
		c.ProjectName = v
	}
	if v := os.Getenv("GNS3_PROJECT_ID"); v != "" {
		c.ProjectID = v
	}
	if v := os.Getenv("GNS3_VALIDATE_CERTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GNS3_VALIDATE_CERTS: %w", err)
		}
		c.ValidateCerts = b
	}
	if v := os.Getenv("GNS3_PORT_OFFSET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GNS3_PORT_OFFSET: %w", err)
		}
		c.PortOffset = n
	}
	return nil
}

// Validate ensures all required configuration values are set and well formed
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("url: missing host in %q", c.URL)
	}

	if c.ProjectID != "" {
		id, err := uuid.Parse(c.ProjectID)
		if err != nil {
			return fmt.Errorf("project_id: %w", err)
		}
		c.ProjectID = id.String()
	}

	return nil
}

// ControllerHost returns the host part of the controller URL
func (c *Config) ControllerHost() string {
	u, err := url.Parse(c.URL)
	if err != nil || u.Hostname() == "" {
		return c.URL
	}
	return u.Hostname()
}

// Summary returns a one-line description for debug logging
func (c *Config) Summary() string {
	project := c.ProjectName
	if c.ProjectID != "" {
		project = c.ProjectID
	}
	return fmt.Sprintf("url=%s project=%s port_offset=%d validate_certs=%t group=%s",
		c.URL, project, c.PortOffset, c.ValidateCerts, c.Group)
}
