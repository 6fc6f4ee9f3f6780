package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var replaceCmd = &cobra.Command{
	Use:   "replace -l <language> [flags] [--] <program> [args...]",
	Short: "Add or overwrite a launch entry",
	Long: `Write a launch entry, overwriting any entry with the same label in place.

If no entry has the label, the new one is appended, exactly like 'tink add'.

Examples:
  tink replace -l go -- ./cmd/api --port 9090
  tink replace -l go -n "Debug old" -t vscode -- newprog`,
	RunE: runReplace,
}

var replaceFlags profileFlags

func init() {
	replaceFlags.register(replaceCmd.Flags())
	_ = replaceCmd.MarkFlagRequired("language")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) (err error) {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.closeInto(&err)

	p, err := replaceFlags.profile(e, args)
	if err != nil {
		return err
	}

	res, err := e.dispatcher.Replace(p)
	if err != nil {
		return err
	}

	verb := "Added"
	if res.Replaced {
		verb = "Replaced"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %q in %s\n", verb, res.Entry.Key, res.Path)
	return nil
}
