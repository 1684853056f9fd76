package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/calc/calcconfigs"
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/logs"
	"github.com/reusee/calc/modes"
	"github.com/reusee/calc/repl"
	"github.com/reusee/dscope"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	scope := dscope.New(
		new(repl.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(2)
		}
	})

	scope.Call(func(
		level calcconfigs.LogLevel,
		loop repl.Loop,
		logger logs.Logger,
	) {
		if err := logs.SetDefaultLevel(string(level)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		err := loop(ctx, os.Stdin, os.Stdout)
		switch {
		case err == nil, errors.Is(err, context.Canceled):
		case errors.Is(err, repl.ErrTapWithJobs):
			fmt.Fprintln(os.Stderr, err)
			cancel()
			os.Exit(2)
		default:
			logger.Error("loop", "error", err)
			cancel()
			os.Exit(1)
		}
	})
}
