package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/agent-trust/registry/identity"
)

func setNoColor(noColor bool) {
	color.NoColor = noColor
}

func printSuccess(w io.Writer, msg string, params ...interface{}) {
	fmt.Fprintln(w, color.New(color.FgGreen).Sprintf(msg, params...))
}

func printInfo(w io.Writer, msg string, params ...interface{}) {
	fmt.Fprintln(w, color.New(color.FgWhite).Sprintf(msg, params...))
}

func printWarning(w io.Writer, msg string, params ...interface{}) {
	fmt.Fprintln(w, color.New(color.FgYellow).Sprintf(msg, params...))
}

func printErr(w io.Writer, err error, params ...interface{}) {
	fmt.Fprintln(w, color.New(color.FgRed).Sprintf(err.Error(), params...))
}

func printSummary(w io.Writer, i int, s *identity.Summary) {
	name := s.Name
	if name == "" {
		name = "(unnamed)"
	}
	printSuccess(w, "%d. %s", i+1, name)
	if s.GPGFingerprint != "" {
		printInfo(w, "   gpg: %s", s.GPGFingerprint)
	}
	for platform, handle := range s.Platforms {
		printInfo(w, "   %s: %s", platform, handle)
	}
}
