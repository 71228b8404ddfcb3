package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tr701/lang/parser"
	"github.com/dhamidi/tr701/lang/source"
	"github.com/dhamidi/tr701/watch"
)

// checkResult is the outcome of checking one file.
type checkResult int

const (
	resultAccepted checkResult = iota
	resultRejected
	resultUnreadable
)

func checkFile(w io.Writer, path string, keywords *parser.Keywords) checkResult {
	units, err := source.Open(path)
	if err != nil {
		fmt.Fprintln(w, errorStyle.Render("unreadable:"), err)
		return resultUnreadable
	}
	err = parser.Check(units, parser.WithFile(path), parser.WithKeywords(keywords))
	var perr *parser.Error
	if errors.As(err, &perr) {
		fmt.Fprintln(w, errorStyle.Render("rejected:"), perr)
		return resultRejected
	}
	if err != nil {
		fmt.Fprintln(w, errorStyle.Render("unreadable:"), err)
		return resultUnreadable
	}
	fmt.Fprintln(w, okStyle.Render("ok:"), path)
	return resultAccepted
}

func newCheckCmd(a *app) *cobra.Command {
	var watchFiles bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check TR-701 programs for lexical and syntax errors",
		Long: `Check TR-701 programs for lexical and syntax errors.

Files must be UTF-16LE with a byte-order mark. The exit status is 0 when
every file is accepted, 1 when a program is rejected and 2 when a file
could not be opened or decoded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if watchFiles {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()

				w := watch.New(args, func(path string) {
					checkFile(out, path, a.keywords)
				})
				w.SetInterval(interval)
				w.Start()
				fmt.Fprintln(out, dimStyle.Render("watching for changes, press Ctrl-C to stop"))
				<-ctx.Done()
				w.Stop()
				return nil
			}

			worst := resultAccepted
			for _, path := range args {
				if r := checkFile(out, path, a.keywords); r > worst {
					worst = r
				}
			}
			switch worst {
			case resultRejected:
				return errRejected
			case resultUnreadable:
				return errUnreadable
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "re-check files and directories whenever they change")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval for --watch")

	return cmd
}
