package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"tasklist/internal/repository"
	"tasklist/internal/repository/file"
	"tasklist/internal/repository/sqlite"
)

// CreateRepository builds the storage backend selected by the configuration
func CreateRepository(config *Config, logger *log.Logger) (repository.Repository, error) {
	switch config.Storage.Backend {
	case BackendFile, "":
		return file.New(file.Options{
			DataDir:         config.Storage.DataDir,
			DirPermissions:  os.FileMode(config.Storage.DirPermissions),
			FilePermissions: os.FileMode(config.Storage.FilePermissions),
		}, logger), nil
	case BackendSQLite:
		return sqlite.New(sqlite.Options{
			DataDir:        config.Storage.DataDir,
			DirPermissions: os.FileMode(config.Storage.DirPermissions),
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}
}
