package app

import (
	"context"

	"github.com/shandysiswandi/finvalidate/internal/pkg/config"
	"github.com/shandysiswandi/finvalidate/internal/pkg/instrument"
	"github.com/shandysiswandi/finvalidate/internal/pkg/uid"
	"github.com/shandysiswandi/finvalidate/internal/pkg/validator"
	"github.com/shandysiswandi/finvalidate/internal/ruleset"
)

// App wires dependencies and manages the command lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	uuid      uid.StringID

	// modules
	ruleset *ruleset.Module

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initModules()
	app.initClosers()
	app.watchSignals()

	return app
}
