package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/finvalidate/internal/ruleset"
)

func (a *App) initModules() {
	mod, err := ruleset.New(ruleset.Dependency{
		Config:       a.config,
		Instrument:   a.ins,
		Validator:    a.validator,
		MaxGoroutine: a.config.GetInt("app.max_goroutine"),
	})
	if err != nil {
		slog.Error("failed to init module ruleset", "error", err)
		os.Exit(1)
	}

	a.ruleset = mod
}
