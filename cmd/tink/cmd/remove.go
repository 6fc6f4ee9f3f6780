package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [-t target] <label>",
	Short: "Remove a launch entry by label",
	Long: `Remove the launch entry with the given label (Zed) or name (VS Code).

Examples:
  tink remove "Debug myprog"
  tink remove -t vscode "API server"`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

var removeTarget string

func init() {
	removeCmd.Flags().StringVarP(&removeTarget, "target", "t", "", "editor: zed or vscode (default from config, else zed)")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) (err error) {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.closeInto(&err)

	target, err := e.resolveTarget(removeTarget)
	if err != nil {
		return err
	}

	path, err := e.dispatcher.Remove(target, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", args[0], path)
	return nil
}
