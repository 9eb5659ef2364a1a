package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

var explicitDir string

func SetExplicitDir(dir string) {
	explicitDir = dir
	slog.Debug("common", "configdir", dir)
}

func ConfigDir() string {
	if explicitDir != "" {
		return explicitDir
	}

	dir, err := os.UserConfigDir()
	if err == nil {
		usrCfgDir := filepath.Join(dir, Name)

		if FileExists(usrCfgDir) {
			return usrCfgDir
		}
	} else {
		slog.Debug("common", "userconfigdir", err)
	}

	for _, v := range xdg.ConfigDirs {
		if FileExists(filepath.Join(v, Name)) {
			return filepath.Join(v, Name)
		}
	}

	return ""
}

// ConfigFile returns the path of <name>.toml in the config dir, or "" if
// there is none.
func ConfigFile(name string) string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}

	file := filepath.Join(dir, fmt.Sprintf("%s.toml", name))

	if FileExists(file) {
		return file
	}

	return ""
}

// LoadLocalEnv loads the .env file of the config dir into the environment.
// Variables already set are kept.
func LoadLocalEnv() error {
	dir := ConfigDir()
	if dir == "" {
		return nil
	}

	envFile := filepath.Join(dir, ".env")

	if !FileExists(envFile) {
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	slog.Debug("common", "localenv", "loaded")

	return nil
}

func FileExists(filename string) bool {
	if filename == "" {
		return false
	}

	_, err := os.Stat(filename)
	return err == nil
}
