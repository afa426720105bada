package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"clremap/internal/diag"
	"clremap/internal/rewrite"
	"clremap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "clremap [flags] [files]",
	Short: "Remap cl command files and precompiled headers",
	Long: `clremap rewrites cl's command files and precompiled headers so the
absolute paths embedded in them refer to the host filesystem namespace.
Files passed to the root command are remapped as command files.

Exit codes:
  0  success
  1  generic failure
  2  translation capability unavailable
  3  failed to open or write a file
  4  failed to remap a path`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupColor(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return diag.Errorf(diag.UnknownCode, "no input files")
		}
		return runRemap(cmd, args, rewrite.CommandFile)
	},
}

// main registers subcommands and persistent flags, then executes the root
// command. Errors are printed to stderr (unless quiet) and mapped onto the
// documented exit codes; quiet suppresses the message, never the code.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(cmdCmd)
	rootCmd.AddCommand(pchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress error output")
	rootCmd.PersistentFlags().Bool("debug", false, "log tokens and write .out siblings instead of overwriting")
	rootCmd.PersistentFlags().String("config", "", "path to clremap.toml")

	if err := rootCmd.Execute(); err != nil {
		quiet, _ := rootCmd.PersistentFlags().GetBool("quiet")
		if !quiet {
			diag.Fprint(os.Stderr, err)
		}
		os.Exit(diag.ExitCode(err))
	}
}

func setupColor(cmd *cobra.Command) {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stderr)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
