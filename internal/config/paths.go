package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "GNS3_INVENTORY_CONFIG"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "gns3-inventory"
)

// ConfigFileNames are the inventory source names looked up in each directory
var ConfigFileNames = []string{"gns3.yml", "gns3.yaml"}

// FindConfigPath searches for config file in priority order:
// 1. $GNS3_INVENTORY_CONFIG (explicit path)
// 2. ./gns3.yml or ./gns3.yaml (working directory)
// 3. $XDG_CONFIG_HOME/gns3-inventory/
// 4. ~/.config/gns3-inventory/
// 5. /etc/gns3-inventory/
//
// Returns empty string if no config file found
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	for _, name := range ConfigFileNames {
		if fileExists(name) {
			if abs, err := filepath.Abs(name); err == nil {
				return abs
			}
			return name
		}
	}

	var dirs []string
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		dirs = append(dirs, filepath.Join(xdgHome, ConfigDirName))
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", ConfigDirName))
	}
	dirs = append(dirs, filepath.Join("/etc", ConfigDirName))

	for _, dir := range dirs {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path
			}
		}
	}

	return ""
}

// VerifyFile reports whether path looks like an inventory source for this
// plugin. Ansible passes every file of an inventory directory to every
// plugin, so only files ending in gns3.yml or gns3.yaml are claimed.
func VerifyFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range ConfigFileNames {
		if strings.HasSuffix(base, name) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
