package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/agent-trust/registry/cmd"
)

var log = logrus.New()

func init() {
	log.Level = logrus.InfoLevel
	log.Formatter = &logrus.TextFormatter{
		ForceColors: true,
	}

	mode := os.Getenv("GOLANG_ENV")
	if mode != "PRODUCTION" {
		log.Out = os.Stdout
	} else {
		log.Out = os.Stderr
	}

	cmd.SetLogger(log)
}

func main() {
	cmd.Execute()
}
