package inbound

import (
	"github.com/shandysiswandi/finvalidate/internal/pkg/validator"
)

// Result is the outcome of checking one payload.
type Result struct {
	Source  string                 `json:"source"`
	Valid   bool                   `json:"valid"`
	Message string                 `json:"message"`
	Record  any                    `json:"record,omitempty"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
	Fields  map[string]string      `json:"fields,omitempty"`
}

// Report groups the results of one run.
type Report struct {
	Schema  string   `json:"schema"`
	Valid   int      `json:"valid"`
	Invalid int      `json:"invalid"`
	Results []Result `json:"results"`
}

// Failed reports whether any payload was rejected.
func (r *Report) Failed() bool {
	return r.Invalid > 0
}
