package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/schmitthub/mcruntime/internal/build"
	"github.com/schmitthub/mcruntime/internal/cmd"
	"github.com/schmitthub/mcruntime/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	rootCmd := cmd.NewRootCmd(build.Version, build.Date)
	if _, err := rootCmd.ExecuteC(); err != nil {
		return err
	}

	notifyUpdate()
	return nil
}

// notifyUpdate prints a hint when a newer mcruntime release exists. It never
// fails the command.
func notifyUpdate() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	statePath, err := update.DefaultStatePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: update check: %v\n", err)
		return
	}

	checker := &update.Checker{StatePath: statePath, Repo: "schmitthub/mcruntime"}
	result, err := checker.CheckForUpdate(ctx, build.Version)
	if err != nil || result == nil || !result.UpdateAvailable {
		return
	}

	fmt.Fprintf(os.Stderr, "\nUpdate available: %s -> %s\n  %s\n\n", result.CurrentVersion, result.LatestVersion, result.ReleaseURL)
}

type exitCoder interface {
	ExitCode() int
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}

	return 1
}
