package ruleset

import (
	"github.com/shandysiswandi/finvalidate/internal/pkg/config"
	"github.com/shandysiswandi/finvalidate/internal/pkg/instrument"
	"github.com/shandysiswandi/finvalidate/internal/pkg/validator"
	"github.com/shandysiswandi/finvalidate/internal/ruleset/inbound"
	"github.com/shandysiswandi/finvalidate/internal/ruleset/usecase"
)

type Dependency struct {
	Config       config.Config              `validate:"required"`
	Instrument   instrument.Instrumentation `validate:"required"`
	Validator    validator.Validator        `validate:"required"`
	MaxGoroutine int                        `validate:"gte=0"`
}

// Module is the wired ruleset: the usecase for in-process callers and the
// command line endpoint.
type Module struct {
	Usecase *usecase.Usecase
	CLI     *inbound.CLIEndpoint
}

func New(dep Dependency) (*Module, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	uc, err := usecase.New(usecase.Dependency{
		Validator:  dep.Validator,
		Config:     dep.Config,
		Instrument: dep.Instrument,
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		Usecase: uc,
		CLI:     inbound.NewCLIEndpoint(uc, dep.MaxGoroutine),
	}, nil
}
