package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/tr701/config"
	"github.com/dhamidi/tr701/lang/parser"
)

const version = "0.1.0"

// Exit statuses of the check command.
const (
	exitOK         = 0
	exitRejected   = 1
	exitUnreadable = 2
)

var (
	errRejected   = errors.New("program rejected")
	errUnreadable = errors.New("input could not be read")
)

// app carries settings shared by every subcommand.
type app struct {
	configPath string
	verbosity  int
	logFile    string

	config   *config.Config
	keywords *parser.Keywords
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	var err error
	if a.configPath != "" {
		a.config, err = config.Load(a.configPath)
	} else {
		a.config, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	a.keywords, err = a.config.KeywordTable()
	if err != nil {
		return err
	}

	verbosity := a.config.Log.Verbosity
	if cmd.Flags().Changed("verbose") {
		verbosity = a.verbosity
	}
	var path *string
	if a.logFile != "" {
		path = &a.logFile
	} else if a.config.Log.File != "" {
		path = &a.config.Log.File
	}
	commonlog.Configure(verbosity, path)
	return nil
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "tr701",
		Short:             "Lexer and syntax checker for the TR-701 language",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (TOML or YAML); defaults to $"+config.EnvVar)
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "log verbosity; repeat for more (-vv traces the grammar)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newKeywordsCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))

	err := rootCmd.Execute()
	switch {
	case err == nil:
		os.Exit(exitOK)
	case errors.Is(err, errRejected):
		os.Exit(exitRejected)
	case errors.Is(err, errUnreadable):
		os.Exit(exitUnreadable)
	default:
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(exitUnreadable)
	}
}
