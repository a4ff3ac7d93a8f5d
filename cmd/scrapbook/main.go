// Command scrapbook is a terminal front end: sign up or in, manage friends,
// exchange messages and edit the profile. The session token is kept in
// SESSION_FILEPATH between runs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"scrapbook/internal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitUsage   = 64
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage(os.Stderr)
		return exitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage(os.Stderr)
		return exitUsage
	}

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		failure(os.Stderr, fmt.Errorf("config error: %w", err))
		return exitConfig
	}
	if err := config.Validate(); err != nil {
		failure(os.Stderr, err)
		return exitConfig
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, config, log)
	if err != nil {
		failure(os.Stderr, err)
		return exitRuntime
	}
	defer app.Close()

	if err = app.resume(ctx); err != nil {
		failure(os.Stderr, err)
		return exitRuntime
	}
	if err = cmd.run(ctx, app, args[1:]); err != nil {
		failure(os.Stderr, err)
		return exitRuntime
	}
	return exitOK
}
