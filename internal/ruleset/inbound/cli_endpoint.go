package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/shandysiswandi/finvalidate/internal/pkg/goerror"
	"github.com/shandysiswandi/finvalidate/internal/pkg/goroutine"
	"github.com/shandysiswandi/finvalidate/internal/pkg/validator"
)

// StdinSource names payloads read from standard input.
const StdinSource = "-"

// CLIEndpoint checks JSON payloads against a named schema.
type CLIEndpoint struct {
	uc        uc
	maxWorker int
}

// Schemas lists the schema names a payload can be checked against.
func (h *CLIEndpoint) Schemas() []string {
	return h.uc.Schemas()
}

// ValidateFiles checks every file in paths against schema. Files are read and
// checked concurrently; results keep the order of paths.
//
// The returned error is only set when the run itself cannot proceed, such as
// an unknown schema or a canceled context. Problems with a single file are
// reported in its Result.
func (h *CLIEndpoint) ValidateFiles(ctx context.Context, schema string, paths []string) (*Report, error) {
	if !slices.Contains(h.uc.Schemas(), schema) {
		return nil, goerror.NewBusiness("unknown schema "+schema, goerror.CodeNotFound)
	}

	results := make([]Result, len(paths))
	g := goroutine.NewManager(h.maxWorker)

	for i, path := range paths {
		g.Go(ctx, func(ctx context.Context) error {
			results[i] = h.validateFile(ctx, schema, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newReport(schema, results), nil
}

// ValidateReader checks a single payload read from r.
func (h *CLIEndpoint) ValidateReader(ctx context.Context, schema, source string, r io.Reader) (*Report, error) {
	if !slices.Contains(h.uc.Schemas(), schema) {
		return nil, goerror.NewBusiness("unknown schema "+schema, goerror.CodeNotFound)
	}

	return newReport(schema, []Result{h.validate(ctx, schema, source, r)}), nil
}

func (h *CLIEndpoint) validateFile(ctx context.Context, schema, path string) Result {
	f, err := os.Open(path)
	if err != nil {
		slog.WarnContext(ctx, "failed to open payload", "path", path, "error", err)
		return Result{Source: path, Message: "cannot read file: " + err.Error()}
	}
	defer f.Close()

	return h.validate(ctx, schema, path, f)
}

func (h *CLIEndpoint) validate(ctx context.Context, schema, source string, r io.Reader) Result {
	record, err := decodePayload(r)
	if err != nil {
		return errorResult(source, err)
	}

	out, err := h.uc.Validate(ctx, schema, record)
	if err != nil {
		return errorResult(source, err)
	}

	return Result{Source: source, Valid: true, Message: "record is valid", Record: out}
}

// decodePayload reads exactly one JSON object. Numbers are kept as
// json.Number so money values are not rounded through float64.
func decodePayload(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, goerror.NewInvalidFormat("invalid JSON: " + err.Error())
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat("payload must hold a single JSON value")
	}

	record, ok := payload.(map[string]any)
	if !ok {
		return nil, goerror.NewInvalidFormat("payload must be a JSON object")
	}

	return record, nil
}

func errorResult(source string, err error) Result {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		return Result{Source: source, Message: "Internal server error"}
	}

	res := Result{Source: source, Message: gerr.Msg()}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		res.Errors = ve
		res.Fields = ve.Values()
	}

	return res
}

func newReport(schema string, results []Result) *Report {
	rep := &Report{Schema: schema, Results: results}
	for _, r := range results {
		if r.Valid {
			rep.Valid++
		} else {
			rep.Invalid++
		}
	}
	return rep
}
