package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/promptline/gitline/internal/cache"
	"github.com/promptline/gitline/internal/config"
	"github.com/promptline/gitline/internal/gitstatus"
	"github.com/promptline/gitline/internal/utils/colors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug     bool
	Directory string
	Color     bool
}

var RootCmd = &cobra.Command{
	Use:   "gitline",
	Short: "print the git segment of a shell prompt",

	// Don't automatically print errors or usage information (we handle that ourselves).
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("gitline_version", config.Version).Debug("enabled debug logging")
		}

		// A broken config file must not break the prompt; fall back to
		// defaults and log.
		didLoadConfig, err := config.Load(nil)
		if err != nil {
			logrus.WithError(err).Debug("failed to load configuration, using defaults")
		} else if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		dir := rootFlags.Directory
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				logrus.WithError(err).Debug("failed to determine working directory")
				return nil
			}
		}

		svc := gitstatus.NewService(config.Line.Git, cache.New())
		info := svc.Info(cmd.Context(), dir)
		if info == nil {
			return nil
		}

		fmt.Print(renderFragment(*info, config.Line.Symbols))
		return nil
	},
}

// renderFragment produces the prompt fragment, optionally tinted. Prompt
// command substitution isn't a TTY, so color is forced on when requested.
func renderFragment(info gitstatus.Info, symbols config.Symbols) string {
	if !rootFlags.Color {
		return gitstatus.FormatStatus(info, symbols)
	}
	color.NoColor = false
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(colors.Faint(symbols.Git))
	b.WriteString(" ")
	b.WriteString(colors.Branch(info.Branch))
	if indicators := gitstatus.FormatIndicators(info.Indicators, symbols); indicators != "" {
		b.WriteString(" [")
		b.WriteString(colors.Indicator(indicators))
		b.WriteString("]")
	}
	return b.String()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.PersistentFlags().StringVarP(
		&rootFlags.Directory, "dir", "C", "",
		"directory to inspect (defaults to the working directory)",
	)
	RootCmd.Flags().BoolVar(
		&rootFlags.Color, "color", false,
		"tint the fragment with ANSI colors",
	)
	RootCmd.AddCommand(
		versionCmd,
	)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		// The root command never fails (a prompt hook must not), but
		// subcommands and flag parsing can.
		_, _ = fmt.Fprintln(os.Stderr, colors.Failure("error: ", err.Error()))
		os.Exit(1)
	}
}
