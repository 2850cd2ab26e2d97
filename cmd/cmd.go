// Package cmd defines the CLI interface. It relies heavily on the spf13/cobra
// package.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/qri-io/ioes"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// SetLogger replaces the package logger. main uses this to route CLI logs
// through its configured logger
func SetLogger(l *logrus.Logger) {
	logger = l
}

// Execute adds all child commands to the root command, sets flags
// appropriately & runs. This is called by main.main(). It only needs to
// happen once
func Execute() {
	root := NewRegistryCommand(context.Background(), ioes.NewStdIOStreams())
	// If the subcommand hits an error, don't show usage or the error, since
	// we'll show the error message below, on our own. Usage is still shown
	// if the subcommand is missing command-line arguments.
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		ErrExit(os.Stderr, err)
	}
}

// ErrExit writes an error to the given io.Writer & exits
func ErrExit(w io.Writer, err error) {
	printErr(w, err)
	os.Exit(1)
}

// ExitIfErr only calls ErrExit if there is an error present
func ExitIfErr(w io.Writer, err error) {
	if err != nil {
		ErrExit(w, err)
	}
}
