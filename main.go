package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ateliers/internal/ateliers/cmd"
	"laptudirm.com/x/ateliers/pkg/schedule"
)

// LogLevelEnv names the environment variable holding the default log
// level, overridden by the --debug and --trace flags.
const LogLevelEnv = "ATELIERS_LOG_LEVEL"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logLevel(os.Getenv(LogLevelEnv)))

	if err := cmd.Root().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(exitCode(err))
	}
}

// logLevel parses the given level name, falling back to Info.
func logLevel(name string) logrus.Level {
	if name == "" {
		return logrus.InfoLevel
	}

	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.Warnf("Ignoring %s: %v", LogLevelEnv, err)
		return logrus.InfoLevel
	}

	return level
}

// exitCode is 2 for errors in the tournament itself, such as missing teams
// or ambiguous names, and 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, schedule.ErrInvalidInput) || errors.Is(err, schedule.ErrAmbiguousName) {
		return 2
	}

	return 1
}
