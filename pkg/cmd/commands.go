package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osmkit/stringmatch/pkg/cmd/scan"
	"github.com/osmkit/stringmatch/pkg/log"
	"github.com/osmkit/stringmatch/pkg/pattern"
	"github.com/osmkit/stringmatch/pkg/util/json"
	"github.com/osmkit/stringmatch/pkg/version"
)

const (
	// commandRoot is the root command used to route to sub-commands
	commandRoot string = "stringmatch"

	// CommandScan is the command used to filter input lines through compiled expressions
	CommandScan string = "scan"

	// CommandDescribe prints the compiled form of one or more expressions.
	CommandDescribe string = "describe"

	// CommandVersion prints the build version.
	CommandVersion string = "version"
)

// Execute runs the root command for the application.
//
// Any additional commands passed in will be added to the root command.
func Execute(cmds ...*cobra.Command) error {
	return newRootCommand(cmds...).Execute()
}

// newRootCommand creates a new root command which will act as a sub-command router for the
// stringmatch application.
func newRootCommand(cmds ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:           commandRoot,
		Short:         "Compile string matching expressions and filter text with them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add our persistent flags, these are global and available anywhere
	cmd.PersistentFlags().String("log-level", "info", "Set the log level")
	cmd.PersistentFlags().String("log-format", "pretty", "Set the log format - Can be either 'JSON' or 'pretty'")
	cmd.PersistentFlags().Bool("disable-log-color", false, "Disable coloring of log output")

	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", cmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("disable-log-color", cmd.PersistentFlags().Lookup("disable-log-color"))

	// Setup viper to read from the env, this allows reading flags from the command line or the env
	// using the format 'LOG_LEVEL'
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// add the modes of operation
	cmd.AddCommand(
		append([]*cobra.Command{
			newScanCommand(),
			newDescribeCommand(),
			newVersionCommand(),
		}, cmds...)...,
	)

	return cmd
}

func newScanCommand() *cobra.Command {
	opts := &scan.Opts{}

	scanCmd := &cobra.Command{
		Use:   CommandScan + " [flags] EXPR [FILE...]",
		Short: "Print input lines matching an expression.",
		Long: `Compile EXPR and print the lines of the given FILEs (standard input
when none are given) that match it. With --expr-file the expression
argument is omitted and every expression in the file is tried in turn.

The exit status is 0 when at least one line was selected, 1 when none
were, and 2 on usage or compile errors.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Init logging here so cobra/viper has processed the command line args and flags
			// otherwise only envvars are available during init
			log.InitLogging(true)
			opts.In = cmd.InOrStdin()
			opts.Out = cmd.OutOrStdout()
			return scan.Execute(opts, args)
		},
	}

	scanCmd.Flags().StringVarP(&opts.ExprFile, "expr-file", "f", "", "Read expressions from a file, one per line, instead of the EXPR argument")
	scanCmd.Flags().BoolVarP(&opts.Invert, "invert", "v", false, "Select the lines that do not match")
	scanCmd.Flags().BoolVarP(&opts.Count, "count", "c", false, "Print only the number of selected lines")

	return scanCmd
}

func newDescribeCommand() *cobra.Command {
	var asJSON bool

	describeCmd := &cobra.Command{
		Use:   CommandDescribe + " [flags] EXPR...",
		Short: "Print the compiled form of each expression.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Init logging here so cobra/viper has processed the command line args and flags
			// otherwise only envvars are available during init
			log.InitLogging(true)

			matchers, err := pattern.ParseAll(args)
			if err != nil {
				return err
			}

			for _, m := range matchers {
				if asJSON {
					data, err := json.Marshal(m)
					if err != nil {
						return err
					}
					cmd.Println(string(data))
				} else {
					cmd.Println(m.String())
				}
			}
			return nil
		},
	}

	describeCmd.Flags().BoolVar(&asJSON, "json", false, "Print the JSON configuration form instead of the diagnostic form")

	return describeCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   CommandVersion,
		Short: "Print the version of the stringmatch binary.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.FriendlyVersion())
		},
	}
}
