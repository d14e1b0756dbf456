package app

import "go.trai.ch/dbfetch/internal/core/ports"

// Components bundles the application and its wired dependencies for the
// entry point.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Queries      ports.QueryStore
	Source       ports.DataSource
	Cache        ports.ResultCache
	Datadump     ports.Datadump
	Store        ports.StoreWriter
	Telemetry    ports.Telemetry
}
