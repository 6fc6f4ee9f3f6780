package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tink-dev/tink/internal/config"
	tinkerr "github.com/tink-dev/tink/internal/errors"
	"github.com/tink-dev/tink/internal/types"
)

const configTemplate = `# tink configuration

[defaults]
# Editor written to when --target is not given: "zed" or "vscode".
target = %q

[logging]
level = "warn"
format = "text"
# file = ".tink/tink.log"

# Map extra languages to debuggers, or override a built-in.
# A blank field keeps the built-in value for that editor.
#
# [adapters.zig]
# zed = "CodeLLDB"
# vscode = "lldb"
`

var initTarget string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a project config file",
	Long: `Create .tink/config.toml in the project directory.

The file sets the default target editor and shows how to map
additional languages to debuggers. Existing config is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initTarget, "target", "t", string(types.TargetZed), "default editor for this project: zed or vscode")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := getWorkDir()
	if err != nil {
		return err
	}

	target, err := types.ParseTarget(initTarget)
	if err != nil {
		return tinkerr.InvalidTarget(initTarget, []string{string(types.TargetZed), string(types.TargetVSCode)})
	}

	path := filepath.Join(dir, config.DirName, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return tinkerr.ConfigExists(path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return tinkerr.IOWriteError(filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(fmt.Sprintf(configTemplate, target)), 0644); err != nil {
		return tinkerr.IOWriteError(path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
