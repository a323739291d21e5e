package config

import (
	"os"
	"path/filepath"
)

var defaultConfigFiles = []string{"linkcheck.yaml", "linkcheck.yml", "linkcheck.json"}

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the path passed in (from the -config flag)
// 2. LINKCHECK_CONFIG_PATH environment variable
// 3. linkcheck.yaml, linkcheck.yml, linkcheck.json in the current working directory
// An empty result means no config file was found.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if fileExists(configFilePathFlag) {
			return configFilePathFlag
		}
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for _, name := range defaultConfigFiles {
		path := filepath.Join(cwd, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
