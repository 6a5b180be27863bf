package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvLoanFile = "PAYDOWN_FILE"
	EnvCurrency = "PAYDOWN_CURRENCY"
	EnvStyle    = "PAYDOWN_STYLE"
	EnvVerbose  = "PAYDOWN_VERBOSE"
)

// RunExtension attempts to find and execute an external amort-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "amort-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if *Verbose {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the resolved global settings as environment variables.
	cmd.Env = append(os.Environ(),
		EnvLoanFile+"="+LoanFile(),
		EnvCurrency+"="+setting(*currency, EnvCurrency, ""),
		EnvStyle+"="+setting(*style, EnvStyle, "auto"),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
