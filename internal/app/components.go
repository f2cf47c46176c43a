package app

import "go.trai.ch/keydiff/internal/core/ports"

// Components contains the initialized components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
