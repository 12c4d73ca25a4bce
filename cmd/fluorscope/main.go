// Command fluorscope imports fluorescence spectra and ranks fluorophores
// against optical configurations.
//
// Usage:
//
//	fluorscope [flags] <command> [args]
//
// Examples:
//
//	fluorscope import egfp.csv --category p
//	fluorscope import ET525-50m.txt --category f --subtype bm --owner ET525/50m
//	fluorscope report scope.toml --sort ex --limit 5
//	fluorscope plot egfp.csv mcherry.csv --category p --png spectra.png
//	fluorscope config init
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
