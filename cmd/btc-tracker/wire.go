//go:build wireinject
// +build wireinject

package main

import (
	"btc-tracker/internal/app"

	"github.com/google/wire"
)

// InitializeRunner builds the Runner (config, venues, store, sweeper) via Wire.
func InitializeRunner() (*app.Runner, error) {
	wire.Build(app.ProviderSet)
	return nil, nil
}
