package command

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/mhr3/rollsearch/rolling"
)

// Clog is the logger of the command line tool. It is exported so tests can
// redirect it.
var Clog = log.New(os.Stderr, "hstrstr: ", 0)

// NotFound is printed when the needle does not occur in the haystack.
const NotFound = "NOT FOUND"

var searchFlags = []cli.Flag{
	cli.BoolFlag{Name: "file, f", Usage: "treat HAYSTACK and NEEDLE as paths of files to search"},
	cli.BoolFlag{Name: "index, i", Usage: "print the match index instead of the matched suffix"},
	cli.BoolFlag{Name: "quote, q", Usage: "print non-ASCII output as a quoted Go string"},
	cli.StringFlag{Name: "hash", Value: rolling.Default, Usage: "rolling hash used to filter windows (" + strings.Join(rolling.Names(), ", ") + ")"},
	cli.BoolFlag{Name: "verbose, v", Usage: "log scan statistics"},
}

// NewApp builds the hstrstr application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "hstrstr"
	app.Usage = "find the first occurrence of NEEDLE in HAYSTACK"
	app.ArgsUsage = "HAYSTACK NEEDLE"
	app.HideVersion = true
	app.Flags = searchFlags
	app.Action = SearchAction
	// exit codes are handled by Run
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.OnUsageError = usageError
	return app
}

// usageError prints the help text to ErrWriter. Arguments starting with
// '-' are read as flags unless they follow "--".
func usageError(ctx *cli.Context, err error, _ bool) error {
	w := ctx.App.ErrWriter
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Incorrect Usage: %s\n\n", err)
	cli.HelpPrinter(w, cli.AppHelpTemplate, ctx.App)
	return cli.NewExitError(fmt.Sprintf("%s (use -- before arguments starting with '-')", err), 1)
}

// Run executes the application with args (including the program name) and
// returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	app := NewApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.Run(args)
	if err == nil {
		return 0
	}
	Clog.Print(err)
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.ExitCode()
	}
	return 1
}
