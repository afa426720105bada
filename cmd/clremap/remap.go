package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clremap/internal/config"
	"clremap/internal/driver"
	"clremap/internal/rewrite"
)

// defaultConfigFile is picked up from the working directory when --config
// is not given. Its absence is not an error.
const defaultConfigFile = "clremap.toml"

var cmdCmd = &cobra.Command{
	Use:   "cmd [flags] files",
	Short: "Remap files as cl command files (the default behavior)",
	Long: `Remap each file as a cl command file: every token is re-emitted
quoted, path-shaped tokens are translated first, and forced-include
options (/FI, /Fi) queue a precompiled-header pass over their target.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemap(cmd, args, rewrite.CommandFile)
	},
}

var pchCmd = &cobra.Command{
	Use:   "pch [flags] files",
	Short: "Remap files as precompiled headers (cmake_pch.h and the like)",
	Long: `Remap each file as a precompiled header source: tokens are echoed
as-is except that the target of every #include directive is translated
and re-quoted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemap(cmd, args, rewrite.PrecompiledHeader)
	},
}

func runRemap(cmd *cobra.Command, args []string, mode rewrite.Mode) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, err = driver.Remap(args, mode, cfg, cmd.OutOrStdout())
	return err
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	switch {
	case path != "":
		cfg, err = config.Load(path)
	case fileExists(defaultConfigFile):
		cfg, err = config.Load(defaultConfigFile)
	default:
		cfg = config.Default()
	}
	if err != nil {
		return cfg, err
	}

	cfg.Quiet, _ = flags.GetBool("quiet")
	cfg.Debug, _ = flags.GetBool("debug")
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
