package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FFengIll/hostls/pkg"
)

const usageText = `Usage: hostls [options]

Report local users and running processes.

Options:
  -u, --users          list system users and their home directories
  -p, --processes      list running processes by PID
  -l, --log PATH       append normal output to PATH
  -e, --errors PATH    append error output to PATH
  -h, --help           show this help and exit
`

// errReported marks failures already written to the active error sink,
// so main only sets the exit status.
var errReported = errors.New("already reported")

var listUsers = false
var listProcesses = false
var logPath = ""
var errorPath = ""

var rootCmd = &cobra.Command{
	Use:           "hostls",
	Short:         "report local users and running processes",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := collectOptions()
		if opts.Actions.Empty() {
			// no query requested, same as asking for help
			return runHelp(opts)
		}

		dispatcher := pkg.NewDispatcher(opts)
		defer dispatcher.Close()
		if err := dispatcher.Setup(); err != nil {
			fmt.Fprintln(dispatcher.Err(), err)
			return errReported
		}
		if err := dispatcher.Run(); err != nil {
			fmt.Fprintln(dispatcher.Err(), err)
			return errReported
		}
		return nil
	},
}

func collectOptions() *pkg.Options {
	opts := pkg.NewOptions()
	if listUsers {
		opts.Actions.Add(pkg.ActionUsers)
	}
	if listProcesses {
		opts.Actions.Add(pkg.ActionProcesses)
	}
	opts.LogPath = logPath
	opts.ErrorPath = errorPath
	return opts
}

// runHelp prints the usage text, going through the same redirection
// setup as a normal run so that a configured log file receives the
// help text too.
func runHelp(opts *pkg.Options) error {
	dispatcher := pkg.NewDispatcher(opts)
	defer dispatcher.Close()
	if err := dispatcher.Setup(); err != nil {
		fmt.Fprintln(dispatcher.Err(), err)
		return errReported
	}
	fmt.Fprint(dispatcher.Out(), usageText)
	return nil
}

// formatParseError rewords pflag parse failures into the diagnostics
// this tool documents.
func formatParseError(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		return "Unknown option: " + strings.TrimPrefix(msg, "unknown flag: ")
	case strings.HasPrefix(msg, "unknown shorthand flag:"):
		// "unknown shorthand flag: 'x' in -x"
		if i := strings.LastIndex(msg, " in "); i >= 0 {
			return "Unknown option: " + msg[i+len(" in "):]
		}
		return "Unknown option: " + msg
	case strings.HasPrefix(msg, "flag needs an argument:"):
		return "option requires a file path"
	}
	return msg
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&listUsers, "users", "u", false, "list system users and their home directories")
	flags.BoolVarP(&listProcesses, "processes", "p", false, "list running processes by PID")
	flags.StringVarP(&logPath, "log", "l", "", "append normal output to this file")
	flags.StringVarP(&errorPath, "errors", "e", "", "append error output to this file")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if err := runHelp(collectOptions()); err != nil {
			os.Exit(1)
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, formatParseError(err))
		}
		os.Exit(1)
	}
}
