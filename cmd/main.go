package cmd

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/hd/internal"
)

var logger = internal.GetLogger("hd_cmd")

func Main(args []string) error {
	// a closed stdout shows up as EPIPE from Write instead of killing us
	signal.Ignore(syscall.SIGPIPE)

	app := newApp()
	err := app.Run(reorderOptions(app, args))
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		err = nil
	}

	return err
}

func newApp() *cli.App {
	// -v belongs to --no-squeezing
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}
	return &cli.App{
		Name:                   "hd",
		Usage:                  "display file contents in hexadecimal, decimal, octal, or ascii",
		ArgsUsage:              "FILE",
		Version:                internal.Version(),
		Copyright:              "Apache License 2.0",
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		Flags:                  globalFlags(),
		Action:                 dump,
		// keep stdout for dump lines; the error reaches stderr through main
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return fmt.Errorf("%v (see %s --help): %w", err, c.App.Name, internal.ErrUsage)
		},
	}
}

// reorderOptions moves every option in front of the positional arguments,
// since urfave/cli stops parsing flags at the first positional. Everything
// after "--" is positional.
func reorderOptions(app *cli.App, args []string) []string {
	var newArgs = []string{args[0]}
	var others []string
	flags := append(app.Flags, cli.VersionFlag, cli.HelpFlag)
	for i := 1; i < len(args); i++ {
		option := args[i]
		if option == "--" {
			others = append(others, args[i+1:]...)
			break
		}
		parts, hasValue, ok := []string{option}, false, false
		if ok, hasValue = isFlag(flags, option); !ok {
			parts, hasValue, ok = splitShortOptions(flags, option)
		}
		if ok {
			newArgs = append(newArgs, parts...)
			// a missing value is left for urfave/cli to report
			if hasValue && i+1 < len(args) {
				i++
				newArgs = append(newArgs, args[i])
			}
		} else if strings.HasPrefix(option, "-") && option != "-" {
			// unknown, left for urfave/cli to reject
			newArgs = append(newArgs, option)
		} else {
			others = append(others, option)
		}
	}
	if len(others) == 0 {
		return newArgs
	}
	newArgs = append(newArgs, "--")
	return append(newArgs, others...)
}

func isFlag(flags []cli.Flag, option string) (bool, bool) {
	if !strings.HasPrefix(option, "-") || option == "-" {
		return false, false
	}
	// --C or -C work the same
	name := strings.TrimLeft(option, "-")
	for _, flag := range flags {
		_, isBool := flag.(*cli.BoolFlag)
		for _, n := range flag.Names() {
			if name == n || strings.HasPrefix(name, n+"=") {
				return true, !isBool && !strings.Contains(name, "=")
			}
		}
	}
	return false, false
}

// splitShortOptions expands a bundle of short options such as -Cv, -n4 or
// -Cn16 into separate arguments. Only the last option of a bundle may take a
// value, either attached or as the next argument (needsValue).
func splitShortOptions(flags []cli.Flag, option string) (parts []string, needsValue bool, ok bool) {
	if strings.HasPrefix(option, "--") || !strings.HasPrefix(option, "-") || len(option) < 3 {
		return nil, false, false
	}
	name := option[1:]
	for i, r := range name {
		short := "-" + string(r)
		isShort, hasValue := isFlag(flags, short)
		if !isShort {
			return nil, false, false
		}
		parts = append(parts, short)
		if hasValue {
			if rest := name[i+1:]; rest != "" {
				return append(parts, strings.TrimPrefix(rest, "=")), false, true
			}
			return parts, true, true
		}
	}
	return parts, false, true
}
