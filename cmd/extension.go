package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions. They are the ones LoadConfig reads,
// so that an extension written in Go can load the same configuration.
const (
	EnvLedgerFile = "PERSISTENCE_FILE"
	EnvVerbose    = "PL_VERBOSE"
	EnvLogFormat  = "PL_LOG_FORMAT"
)

// ExtensionPrefix is the prefix of external binaries implementing pl subcommands.
const ExtensionPrefix = "pl-"

// extensionEnv returns the environment of an extension: the current one plus the configuration.
func extensionEnv() []string {
	env := os.Environ()
	env = append(env, EnvLedgerFile+"="+*ledgerFile)
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	env = append(env, EnvLogFormat+"="+logFormat)
	return env
}

// RunExtension attempts to find and execute an external pl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug().Str("extension", name).Err(err).Msg("extension-not-found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = extensionEnv()

	logger.Debug().Str("extension", lp).Strs("args", args).Msg("extension-running")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
