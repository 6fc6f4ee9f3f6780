package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add -l <language> [flags] [--] <program> [args...]",
	Short: "Add a launch entry",
	Long: `Add a launch entry for a program to the editor's debug configuration.

Fails without writing anything if an entry with the same label already exists.
Use 'tink replace' to overwrite it.

Examples:
  tink add -l rust -- ./target/debug/myprog arg1
  tink add -l go -n "API server" -- ./cmd/api --port 8080
  tink add -l python -t vscode -- main.py -v`,
	RunE: runAdd,
}

var addFlags profileFlags

func init() {
	addFlags.register(addCmd.Flags())
	_ = addCmd.MarkFlagRequired("language")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) (err error) {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.closeInto(&err)

	p, err := addFlags.profile(e, args)
	if err != nil {
		return err
	}

	res, err := e.dispatcher.Add(p)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", res.Entry.Key, res.Path)
	return nil
}
