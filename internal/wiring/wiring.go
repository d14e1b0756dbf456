// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dbfetch/internal/adapters/cache"
	_ "go.trai.ch/dbfetch/internal/adapters/config"
	_ "go.trai.ch/dbfetch/internal/adapters/fs"
	_ "go.trai.ch/dbfetch/internal/adapters/logger"
	_ "go.trai.ch/dbfetch/internal/adapters/sqldb"
	_ "go.trai.ch/dbfetch/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/dbfetch/internal/app"
)
