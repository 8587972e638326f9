package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/finvalidate/internal/app"
)

func main() {
	application := app.New()                                             // Initialize the application
	code := application.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr) // Validate the payloads named on the command line
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Stop(ctx) // Flush telemetry and close resources
	cancel()
	os.Exit(code)
}
