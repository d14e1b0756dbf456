// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/dbfetch/internal/core/domain"

// ConfigLoader defines the interface for loading the job configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path, validates it and
	// ensures the configured directories exist.
	Load(path string) (*domain.Job, error)
}
