package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// extensionEnv returns the environment of an extension: the current one plus
// the resolved global flags.
func extensionEnv() []string {
	return append(os.Environ(),
		EnvLedgerFile+"="+LedgerFile(),
		EnvCurrency+"="+Currency(),
		EnvRateURL+"="+RateURL(),
		EnvCacheDir+"="+CacheDir(),
		EnvVerbose+"="+strconv.FormatBool(Verbose()),
	)
}

// RunExtension attempts to find and execute an external nw-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "nw-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
