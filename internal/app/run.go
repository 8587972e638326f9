package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shandysiswandi/finvalidate/internal/pkg/goerror"
	"github.com/shandysiswandi/finvalidate/internal/pkg/instrument"
	"github.com/shandysiswandi/finvalidate/internal/ruleset/inbound"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// Run executes one command line invocation and returns the process exit code.
//
//	finvalidate -list
//	finvalidate -schema invoice a.json b.json
//	finvalidate -schema invoice < a.json
func (a *App) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(a.config.GetString("app.name"), flag.ContinueOnError)
	fs.SetOutput(stderr)

	schema := fs.String("schema", "", "schema to check payloads against")
	list := fs.Bool("list", false, "print the schema names and exit")
	indent := fs.Bool("indent", false, "indent the JSON report")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	enc := json.NewEncoder(stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}

	if *list {
		if err := enc.Encode(a.ruleset.CLI.Schemas()); err != nil {
			slog.Error("failed to write schema list", "error", err)
			return ExitUsage
		}
		return ExitOK
	}

	if *schema == "" {
		fmt.Fprintln(stderr, "missing -schema, run with -list to see the available schemas")
		fs.Usage()
		return ExitUsage
	}

	ctx := instrument.SetCorrelationID(a.ctx, a.uuid.Generate())

	var (
		rep *inbound.Report
		err error
	)
	if fs.NArg() == 0 || (fs.NArg() == 1 && fs.Arg(0) == inbound.StdinSource) {
		rep, err = a.ruleset.CLI.ValidateReader(ctx, *schema, inbound.StdinSource, stdin)
	} else {
		rep, err = a.ruleset.CLI.ValidateFiles(ctx, *schema, fs.Args())
	}
	if err != nil {
		var gerr *goerror.Error
		if errors.As(err, &gerr) && gerr.Msg() != "" {
			fmt.Fprintln(stderr, gerr.Msg())
		} else {
			fmt.Fprintln(stderr, err)
		}
		slog.ErrorContext(ctx, "validation run aborted", "schema", *schema, "error", err)
		return ExitUsage
	}

	if err := enc.Encode(rep); err != nil {
		slog.ErrorContext(ctx, "failed to write report", "error", err)
		return ExitUsage
	}

	slog.InfoContext(ctx, "validation run finished", "schema", *schema, "valid", rep.Valid, "invalid", rep.Invalid)
	if rep.Failed() {
		return ExitInvalid
	}
	return ExitOK
}

// watchSignals cancels the application context on the first termination signal
// so in-flight validation stops scheduling new payloads.
func (a *App) watchSignals() {
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sigint)

		select {
		case <-sigint:
			slog.Info("termination signal received")
			a.cancel()
		case <-a.ctx.Done():
		}
	}()
}

// Stop cancels outstanding work and closes resources.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}
}
