package inbound

import (
	"context"
)

type uc interface {
	Validate(ctx context.Context, name string, record map[string]any) (any, error)
	Schemas() []string
}

// NewCLIEndpoint wires the validation usecase to the command line.
// maxWorker bounds how many payload files are checked at once.
func NewCLIEndpoint(uc uc, maxWorker int) *CLIEndpoint {
	return &CLIEndpoint{uc: uc, maxWorker: maxWorker}
}
