// Package main is the entry point for the ao CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.anops.dev/ao/cmd/ao/commands"
	"go.anops.dev/ao/internal/app"
	"go.anops.dev/ao/internal/ui/style"
	_ "go.anops.dev/ao/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, _, err := graft.ExecuteFor[*app.App](ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(application)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints the full context chain and metadata with %+v
		_, _ = fmt.Fprintf(stderr, "%s %+v\n", style.Failure.Render(style.Cross), err)
		return 1
	}
	return 0
}
