// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgfetch/internal/adapters/cas"
	_ "go.trai.ch/pkgfetch/internal/adapters/config"
	_ "go.trai.ch/pkgfetch/internal/adapters/fs"
	_ "go.trai.ch/pkgfetch/internal/adapters/index"
	_ "go.trai.ch/pkgfetch/internal/adapters/logger"
	_ "go.trai.ch/pkgfetch/internal/adapters/solver"
	_ "go.trai.ch/pkgfetch/internal/adapters/stream"
	_ "go.trai.ch/pkgfetch/internal/adapters/telemetry"
	_ "go.trai.ch/pkgfetch/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/pkgfetch/internal/app"
	_ "go.trai.ch/pkgfetch/internal/engine/fetcher"
)
