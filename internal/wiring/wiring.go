// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/keydiff/internal/adapters/config"
	_ "go.trai.ch/keydiff/internal/adapters/console"
	_ "go.trai.ch/keydiff/internal/adapters/fs"
	_ "go.trai.ch/keydiff/internal/adapters/logger"
	_ "go.trai.ch/keydiff/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/keydiff/internal/app"
	_ "go.trai.ch/keydiff/internal/engine/resolver"
)
