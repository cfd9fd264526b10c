// Package cmd provides the root command and CLI setup for allurelint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"allurelint.dev/pkg/allurelint/internal/adapter"
	"allurelint.dev/pkg/allurelint/internal/controller"
	"allurelint.dev/pkg/allurelint/internal/domain"
	m "allurelint.dev/pkg/allurelint/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var pythonFileAdapter adapter.PythonFileAdapter
var reportStore adapter.ReportStore
var checker domain.Checker
var ui controller.UI
var viewUI controller.UI

// workflow prints diagnostics as plain lines; viewWorkflow feeds the viewer.
var workflow domain.Workflow
var viewWorkflow domain.Workflow

var reportFlag string
var summaryFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	viewUI = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	pythonFileAdapter = adapter.NewLocalPythonFileAdapter()
	reportStore = adapter.NewReportStore()
	checker = domain.NewChecker(sourceFSAdapter, pythonFileAdapter)
	workflow = domain.NewWorkflow(reportStore, checker, ui)
	viewWorkflow = domain.NewWorkflow(reportStore, checker, viewUI)
}

const rootLongDescription = `allurelint checks Python test modules (test_*.py) for Allure annotations.

Every test function must carry exactly one @allure.id("<N>") whose argument
is a positive integer written as a string without leading zeros, and an
owner marker, either @allure.label("owner", "<name>") or @owner("<name>").

Arguments that do not end in .py are ignored and .py files whose name does
not start with test_ are skipped. Each problem is printed as

  <path>:<line>:<col> <CODE> <message>

and the exit status is 1 when anything was printed. Run "allurelint rules"
for the list of codes.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "allurelint [files...]",
		Short:         "Check Allure id and owner annotations on Python tests",
		Long:          rootLongDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:   parsePaths(args),
				Report:  m.Path(viper.GetString(reportConfigKey)),
				Summary: summaryEnabled(viper.GetString(summaryConfigKey), controller.IsTTY(os.Stderr)),
			})

			return err
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportFlag, reportFlagName, "r",
			viper.GetString(reportConfigKey),
			"YAML report file: written after a check, read back by view",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().StringVar(&summaryFlag, summaryFlagName, viper.GetString(summaryConfigKey),
		"print a summary on stderr: auto, always or never")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(summaryFlagName), summaryConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey),
		"write logs to this file instead of stderr")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err == nil {
		return
	}

	if !errors.Is(err, domain.ErrDiagnosticsFound) {
		rootCmd.PrintErrln("Error:", err)
	}

	os.Exit(1)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
