package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Show the language to debugger mapping",
	Long: `Show which debugger each language maps to in Zed and VS Code.

Includes languages added or overridden in the [adapters] config table.
Languages not listed still work; their entries get a null adapter.`,
	Args: cobra.NoArgs,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) (err error) {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.closeInto(&err)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-12s %-12s %s\n", "LANGUAGE", "ZED", "VSCODE")
	for _, lang := range e.registry.Languages() {
		d, _ := e.registry.Lookup(lang)
		fmt.Fprintf(w, "%-12s %-12s %s\n", lang, orDash(d.Zed), orDash(d.VSCode))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
